package services

import "github.com/padeltour/academia-api/internal/models"

func seedTours() []*models.Tour {
	return []*models.Tour{
		{
			ID:            "1",
			Title:         "Начни с нуля",
			Subtitle:      "Тенерифе, Испания",
			Dates:         "04.06.25 - 11.06.25",
			Level:         models.LevelBeginnerIntermediate,
			Accommodation: "Abama Hotels ★★★★★",
			Price:         "от 1900",
			Currency:      defaultCurrency,
			Description:   "Идеально для тех, кто только открывает для себя падель. Узнайте основы техники и тактики с нашими тренерами",
			Image:         "https://images.unsplash.com/photo-1689942963385-f5bd03f3b270?crop=entropy&cs=srgb&fm=jpg&ixid=M3w3NDk1ODB8MHwxfHNlYXJjaHwxfHxwYWRlbCUyMGNvdXJ0fGVufDB8fHx8MTc1Mjg0MjA2OXww&ixlib=rb-4.1.0&q=85",
			Features:      []string{"Ежедневные тренировки", "Проживание 5★", "Культурная программа", "Профессиональные тренеры"},
			GroupSize:     "8-12 человек",
		},
		{
			ID:            "2",
			Title:         "Повышай уровень",
			Subtitle:      "Тенерифе, Испания",
			Dates:         "11.06.25 - 18.06.25",
			Level:         models.LevelIntermediateAdvanced,
			Accommodation: "Abama Hotels ★★★★★",
			Price:         "от 1900",
			Currency:      defaultCurrency,
			Description:   "Для игроков среднего уровня. Работайте над техникой, улучшайте удары и развивайте стратегическое мышление.",
			Image:         "https://images.unsplash.com/photo-1673253408773-5b620b1d6b8f?crop=entropy&cs=srgb&fm=jpg&ixid=M3w3NDk1ODB8MHwxfHNlYXJjaHwyfHxwYWRlbCUyMGNvdXJ0fGVufDB8fHx8MTc1Mjg0MjA2OXww&ixlib=rb-4.1.0&q=85",
			Features:      []string{"Интенсивные тренировки", "Тактическое мышление", "Улучшение техники", "Турнирная игра"},
			GroupSize:     "8-12 человек",
		},
		{
			ID:            "3",
			Title:         "Только Padel",
			Subtitle:      "Тенерифе, Испания",
			Dates:         "04.06.25 - 18.06.25",
			Level:         models.LevelIntermediateAdvanced,
			Accommodation: "Без размещения",
			Price:         "от 890",
			Currency:      defaultCurrency,
			Description:   "Если вы предпочитаете самостоятельно путешествовать и при этом хотите начать играть или повысить свой уровень игры с профессионалами.",
			Image:         "https://images.pexels.com/photos/1103833/pexels-photo-1103833.jpeg",
			Features:      []string{"Профессиональные тренировки", "Гибкий график", "Самостоятельное размещение", "Персональный подход"},
			GroupSize:     "8-12 человек",
		},
	}
}

func seedCoaches() []*models.Coach {
	return []*models.Coach{
		{
			ID:              "1",
			Name:            "Карлос Родригес",
			Title:           "Главный тренер",
			Experience:      "15 лет опыта",
			Description:     "Профессиональный игрок с международным опытом. Специализируется на работе с игроками всех уровней.",
			Image:           "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=400&h=400&fit=crop&crop=face",
			Specializations: []string{"Техника", "Стратегия"},
		},
		{
			ID:              "2",
			Name:            "Изабелла Мартинес",
			Title:           "Тренер по технике",
			Experience:      "10 лет опыта",
			Description:     "Эксперт по технике ударов и тактике. Помогает игрокам развивать правильную технику с самого начала.",
			Image:           "https://images.unsplash.com/photo-1494790108755-2616b612b5bc?w=400&h=400&fit=crop&crop=face",
			Specializations: []string{"Основы", "Удары"},
		},
		{
			ID:              "3",
			Name:            "Алехандро Гонсалес",
			Title:           "Тренер по стратегии",
			Experience:      "12 лет опыта",
			Description:     "Специалист по игровой стратегии и психологии. Помогает игрокам развивать тактическое мышление.",
			Image:           "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?w=400&h=400&fit=crop&crop=face",
			Specializations: []string{"Тактика", "Психология"},
		},
	}
}

// seeded testimonials are the curated launch set, so they go in approved
func seedTestimonials() []*models.Testimonial {
	return []*models.Testimonial{
		{
			ID:       "1",
			Name:     "Анна Петрова",
			Role:     "Предприниматель",
			Content:  "Невероятные 7 дней! Профессиональные тренировки, роскошный отель и потрясающие виды Тенерифе. Padel Tour Academia превзошла все ожидания.",
			Rating:   5,
			Image:    "https://images.unsplash.com/photo-1438761681033-6461ffad8d80?w=400&h=400&fit=crop&crop=face",
			Approved: true,
		},
		{
			ID:       "2",
			Name:     "Михаил Соколов",
			Role:     "Инвестор",
			Content:  "Отличная организация, индивидуальный подход и высочайший уровень сервиса. Буду рекомендовать друзьям и обязательно вернусь снова.",
			Rating:   5,
			Image:    "https://images.unsplash.com/photo-1500648767791-00dcc994a43e?w=400&h=400&fit=crop&crop=face",
			Approved: true,
		},
		{
			ID:       "3",
			Name:     "Елена Волкова",
			Role:     "Руководитель",
			Content:  "Идеальное сочетание активного отдыха и релаксации. Тренеры - настоящие профессионалы, а отель просто великолепен!",
			Rating:   5,
			Image:    "https://images.unsplash.com/photo-1534528741775-53994a69daeb?w=400&h=400&fit=crop&crop=face",
			Approved: true,
		},
	}
}

func seedGallery() []*models.GalleryItem {
	return []*models.GalleryItem{
		{
			ID:       "1",
			Image:    "https://images.unsplash.com/photo-1673746214893-42c6c126391f?crop=entropy&cs=srgb&fm=jpg&ixid=M3w3NTY2Nzd8MHwxfHNlYXJjaHwxfHxUZW5lcmlmZSUyMHJlc29ydHxlbnwwfHx8fDE3NTI4NDIwODB8MA&ixlib=rb-4.1.0&q=85",
			Title:    "Luxury Resort Pool",
			Category: models.CategoryAccommodation,
		},
		{
			ID:       "2",
			Image:    "https://images.unsplash.com/photo-1614634495973-216b0bbd464e?crop=entropy&cs=srgb&fm=jpg&ixid=M3w3NTY2Nzd8MHwxfHNlYXJjaHwyfHxUZW5lcmlmZSUyMHJlc29ydHxlbnwwfHx8fDE3NTI4NDIwODB8MA&ixlib=rb-4.1.0&q=85",
			Title:    "Resort Aerial View",
			Category: models.CategoryAccommodation,
		},
		{
			ID:       "3",
			Image:    "https://images.unsplash.com/photo-1637519472672-1ac18adda76b?crop=entropy&cs=srgb&fm=jpg&ixid=M3w3NTY2NzB8MHwxfHNlYXJjaHwxfHxUZW5lcmlmZSUyMGxhbmRzY2FwZXxlbnwwfHx8fDE3NTI4NDIwODh8MA&ixlib=rb-4.1.0&q=85",
			Title:    "Tenerife Mountains",
			Category: models.CategoryLandscape,
		},
		{
			ID:       "4",
			Image:    "https://images.unsplash.com/photo-1685726265084-a660a9085353?crop=entropy&cs=srgb&fm=jpg&ixid=M3w3NTY2NzB8MHwxfHNlYXJjaHwyfHxUZW5lcmlmZSUyMGxhbmRzY2FwZXxlbnwwfHx8fDE3NTI4NDIwODh8MA&ixlib=rb-4.1.0&q=85",
			Title:    "Mountain Road",
			Category: models.CategoryLandscape,
		},
		{
			ID:       "5",
			Image:    "https://images.pexels.com/photos/1103829/pexels-photo-1103829.jpeg",
			Title:    "Padel Training",
			Category: models.CategoryTraining,
		},
	}
}
