package domain

// MembershipPlan is a static pricing tier. Plans are not stored; the set is
// fixed and served straight from this package.
type MembershipPlan struct {
	Name     string   `json:"name"`
	Price    string   `json:"price"`
	Period   string   `json:"period"`
	Features []string `json:"features"`
	Popular  bool     `json:"popular"`
}

// MembershipPlans returns the fixed pricing tiers shown on the membership page.
func MembershipPlans() []MembershipPlan {
	return []MembershipPlan{
		{
			Name:   "Basic",
			Price:  "$29",
			Period: "/month",
			Features: []string{
				"Access to all equipment",
				"Group fitness classes",
				"Locker room access",
				"Free Wi-Fi",
				"Basic nutrition guidance",
			},
		},
		{
			Name:   "Premium",
			Price:  "$59",
			Period: "/month",
			Features: []string{
				"Everything in Basic",
				"Personal trainer sessions (2/month)",
				"Nutrition consultation",
				"Priority class booking",
				"Towel service",
				"Guest passes (2/month)",
			},
			Popular: true,
		},
		{
			Name:   "Elite",
			Price:  "$99",
			Period: "/month",
			Features: []string{
				"Everything in Premium",
				"Unlimited personal trainer sessions",
				"Custom meal plans",
				"24/7 gym access",
				"Unlimited guest passes",
				"Spa and recovery access",
				"Priority support",
			},
		},
	}
}
