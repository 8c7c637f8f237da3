package seed

import "fitzone/fitzone-api/internal/domain"

// Reference catalog inserted on first start. Field values match the original
// FITZONE catalog so a fresh database looks like the marketing site expects.

var referencePrograms = []domain.Program{
	{
		Name:           "Strength Training",
		Description:    "Build muscle mass and increase strength with our comprehensive strength training program. Perfect for beginners and advanced lifters.",
		Duration:       "12 weeks",
		Level:          domain.LevelIntermediate,
		CaloriesBurned: 500,
		Equipment:      "Dumbbells, Barbells, Resistance Bands",
		Image:          "https://images.unsplash.com/photo-1534438327276-14e5300c3a48?w=800",
	},
	{
		Name:           "Cardio Blast",
		Description:    "High-intensity cardio workout to burn calories and improve cardiovascular health. Get your heart pumping!",
		Duration:       "8 weeks",
		Level:          domain.LevelBeginner,
		CaloriesBurned: 600,
		Equipment:      "Treadmill, Stationary Bike, Jump Rope",
		Image:          "https://images.unsplash.com/photo-1571019613454-1cb2f99b2d8b?w=800",
	},
	{
		Name:           "Yoga & Flexibility",
		Description:    "Improve flexibility, balance, and mental well-being with our yoga program. Suitable for all levels.",
		Duration:       "10 weeks",
		Level:          domain.LevelBeginner,
		CaloriesBurned: 250,
		Equipment:      "Yoga Mat, Blocks, Straps",
		Image:          "https://images.unsplash.com/photo-1506126613408-eca07ce68773?w=800",
	},
	{
		Name:           "HIIT Workout",
		Description:    "High-Intensity Interval Training for maximum fat burn in minimal time. Push your limits!",
		Duration:       "6 weeks",
		Level:          domain.LevelAdvanced,
		CaloriesBurned: 700,
		Equipment:      "Kettlebells, Battle Ropes, Timer",
		Image:          "https://images.unsplash.com/photo-1517836357463-d25dfeac3438?w=800",
	},
	{
		Name:           "CrossFit Challenge",
		Description:    "Functional fitness program combining weightlifting, cardio, and gymnastics. For the elite athlete.",
		Duration:       "16 weeks",
		Level:          domain.LevelAdvanced,
		CaloriesBurned: 800,
		Equipment:      "Olympic Barbell, Pull-up Bar, Box",
		Image:          "https://images.unsplash.com/photo-1540497077202-7c8a3999166f?w=800",
	},
	{
		Name:           "Pilates Core",
		Description:    "Strengthen your core and improve posture with our Pilates program. Low impact, high results.",
		Duration:       "8 weeks",
		Level:          domain.LevelBeginner,
		CaloriesBurned: 300,
		Equipment:      "Pilates Mat, Resistance Bands, Ball",
		Image:          "https://images.unsplash.com/photo-1601925260368-ae2f83cf8b7f?w=800",
	},
}

var referenceTrainers = []domain.Trainer{
	{
		Name:           "Mike Johnson",
		Specialization: "Strength Training, Bodybuilding",
		Experience:     "10 years",
		Bio:            "Certified personal trainer with a passion for helping clients achieve their strength goals. Former competitive bodybuilder.",
		Image:          "https://images.unsplash.com/photo-1571019613454-1cb2f99b2d8b?w=400",
	},
	{
		Name:           "Sarah Williams",
		Specialization: "Yoga, Pilates, Flexibility",
		Experience:     "8 years",
		Bio:            "Yoga instructor and wellness coach dedicated to improving flexibility and mental well-being through mindful movement.",
		Image:          "https://images.unsplash.com/photo-1506126613408-eca07ce68773?w=400",
	},
	{
		Name:           "David Chen",
		Specialization: "HIIT, Cardio, Weight Loss",
		Experience:     "12 years",
		Bio:            "Fitness expert specializing in high-intensity workouts and weight management. NASM certified trainer.",
		Image:          "https://images.unsplash.com/photo-1534438327276-14e5300c3a48?w=400",
	},
	{
		Name:           "Emma Davis",
		Specialization: "CrossFit, Functional Fitness",
		Experience:     "7 years",
		Bio:            "CrossFit Level 2 trainer and competitive athlete. Passionate about functional fitness and helping others reach their peak performance.",
		Image:          "https://images.unsplash.com/photo-1517836357463-d25dfeac3438?w=400",
	},
}
