package content

// DefaultDocument returns the hardcoded default content tree. It is the
// value the store reproduces field-for-field after a reset, and the source
// of every page's literal defaults until an admin edits them.
// POST: each call returns a fresh tree; callers may mutate freely
func DefaultDocument() Document {
	return Document{
		"hero": map[string]any{
			"title":    "Unlock Your Basketball Potential",
			"subtitle": "Train with Julian Beard, former professional player with international experience. Master 20 specialized skill modules designed to elevate your game.",
			"image":    "https://images.unsplash.com/photo-1546519638-68e109498ffc?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&q=80",
			"stats": []any{
				map[string]any{"number": "500+", "label": "Players Trained"},
				map[string]any{"number": "20", "label": "Skill Modules"},
				map[string]any{"number": "5+", "label": "Years Experience"},
			},
			"cta": map[string]any{
				"title":    "Start Training Today",
				"subtitle": "From $25/session",
			},
		},
		"features": map[string]any{
			"title":    "Why Choose B.E.A.R.D. Training?",
			"subtitle": "Experience professional-level basketball training with personalized attention and proven methodologies",
			"items": []any{
				map[string]any{
					"title":       "Personalized Training",
					"description": "Customized skill development programs tailored to your specific needs and goals.",
				},
				map[string]any{
					"title":       "Expert Mentorship",
					"description": "Learn from Julian Beard, former professional player with international experience.",
				},
				map[string]any{
					"title":       "Progress Tracking",
					"description": "Monitor your improvement with detailed analytics and performance metrics.",
				},
				map[string]any{
					"title":       "20 Skill Modules",
					"description": "Comprehensive training covering all aspects of basketball from fundamentals to advanced techniques.",
				},
				map[string]any{
					"title":       "Video Analysis",
					"description": "Film breakdown and game study to enhance your basketball IQ and decision-making.",
				},
				map[string]any{
					"title":       "Flexible Scheduling",
					"description": "Book sessions that fit your schedule with our integrated booking system.",
				},
			},
		},
		"about": map[string]any{
			"title":    "Meet Coach Julian Beard",
			"subtitle": "Former professional basketball player turned mentor, dedicated to developing the next generation of players.",
			"image":    "https://images.unsplash.com/photo-1571019613454-1cb2f99b2d8b?ixlib=rb-4.0.3&auto=format&fit=crop&w=600&q=80",
			"story":    "My journey began on the courts of my hometown, where I first fell in love with basketball. That passion carried me through professional leagues across **Europe and Asia** — Italy, Germany, Spain, Ireland, and China. Years of international experience are now translated into effective coaching methodologies for every player I train.",
			"achievements": []any{
				map[string]any{"title": "International Experience", "description": "Played professionally in Italy, Germany, Spain, Ireland, and China"},
				map[string]any{"title": "Record Holder", "description": "Multiple high school and college records and accolades"},
				map[string]any{"title": "500+ Players Trained", "description": "Mentored hundreds of athletes at all skill levels"},
				map[string]any{"title": "Specialized Training", "description": "Expert in skill development and basketball IQ enhancement"},
			},
		},
		"programs": map[string]any{
			"title":    "20 Specialized Training Modules",
			"subtitle": "Comprehensive basketball skill development covering every aspect of the game. Each module is designed by Julian Beard based on professional experience.",
		},
		"drills": map[string]any{
			"title":    "Drills Library",
			"subtitle": "Proven drills from professional training sessions, organized by skill category.",
		},
		"booking": map[string]any{
			"title":        "Book Your Training Session",
			"subtitle":     "Choose your preferred training package and schedule your session with Coach Julian Beard",
			"schedulerUrl": "https://book.squareup.com/appointments/n7hpjjgde4r0e3/location/L4W46R1JTG86N/services",
		},
		"testimonials": map[string]any{
			"title":    "What Players Say",
			"subtitle": "Real results from real athletes",
		},
		"footer": map[string]any{
			"tagline": "B.E.A.R.D. Basketball — Building Elite Athletes, Refining Dreams",
			"email":   "train@beardbasketball.com",
			"phone":   "(555) 123-4567",
		},
	}
}
