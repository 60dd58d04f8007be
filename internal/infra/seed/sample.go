// Package seed supplies the initial application state: a built-in sample
// dataset or a YAML seed file.
package seed

import (
	"time"

	"boothly/internal/domain/entity"
)

// Sample returns the built-in demo dataset of a tattoo artist.
func Sample() entity.Seed {
	return entity.Seed{
		User:         sampleUser(),
		Portfolio:    samplePortfolio(),
		Services:     sampleServices(),
		Bookings:     sampleBookings(),
		Earnings:     sampleEarnings(),
		Availability: sampleAvailability(),
	}
}

func sampleUser() entity.UserProfile {
	return entity.UserProfile{
		ID:           "1",
		Name:         "Arjun Mehta",
		Username:     "arjun-tatts",
		Email:        "arjun@example.com",
		Bio:          "Tattoo artist specializing in minimalist designs. Based in Mumbai, India. 5+ years of experience.",
		Phone:        "+91 98765 43210",
		ProfileImage: "https://images.unsplash.com/photo-1599566150163-29194dcaad36?q=80&w=200&auto=format&fit=crop",
		CreatedAt:    time.Date(2023, time.January, 15, 10, 30, 0, 0, time.UTC),
	}
}

func samplePortfolio() []entity.PortfolioImage {
	return []entity.PortfolioImage{
		{
			ID:          "p1",
			URL:         "https://images.unsplash.com/photo-1571503464184-050a9c808ca0?q=80&w=400&auto=format&fit=crop",
			Title:       "Minimalist Lotus",
			Description: "Simple line art lotus flower on forearm.",
		},
		{
			ID:          "p2",
			URL:         "https://images.unsplash.com/photo-1600471920771-1b7b98e35cb6?q=80&w=400&auto=format&fit=crop",
			Title:       "Custom Script",
			Description: "Personalized calligraphy script on wrist.",
		},
		{
			ID:          "p3",
			URL:         "https://images.unsplash.com/photo-1580653926285-a8736ee6a5aa?q=80&w=400&auto=format&fit=crop",
			Title:       "Mountain Range",
			Description: "Geometric mountain design on back.",
		},
		{
			ID:          "p4",
			URL:         "https://images.unsplash.com/photo-1542727365-19732a80dcfd?q=80&w=400&auto=format&fit=crop",
			Title:       "Floral Sleeve",
			Description: "Detailed floral pattern sleeve design.",
		},
		{
			ID:          "p5",
			URL:         "https://images.unsplash.com/photo-1597217190093-96ef22f6717d?q=80&w=400&auto=format&fit=crop",
			Title:       "Animal Silhouette",
			Description: "Minimalist wolf silhouette design.",
		},
		{
			ID:          "p6",
			URL:         "https://images.unsplash.com/photo-1552627019-947c3789ffb5?q=80&w=400&auto=format&fit=crop",
			Title:       "Geometric Pattern",
			Description: "Abstract geometric pattern on shoulder.",
		},
	}
}

func sampleServices() []entity.Service {
	return []entity.Service{
		{ID: "s1", Title: "Minimalist Tattoo", Description: "Simple, clean line work design (up to 3 inches)", Price: 1200, Duration: 60},
		{ID: "s2", Title: "Custom Script/Text", Description: "Personalized text in your choice of style", Price: 800, Duration: 45},
		{ID: "s3", Title: "Medium Design", Description: "Detailed work up to 5 inches", Price: 2500, Duration: 120},
		{ID: "s4", Title: "Large Piece", Description: "Complex design, 5+ inches", Price: 5000, Duration: 180},
		{ID: "s5", Title: "Touch-up Session", Description: "For existing tattoos that need refreshing", Price: 500, Duration: 30},
	}
}

func sampleBookings() []entity.Booking {
	return []entity.Booking{
		{
			ID:           "b1",
			ClientName:   "Priya Sharma",
			ClientEmail:  "priya@example.com",
			ClientAvatar: "https://images.unsplash.com/photo-1494790108377-be9c29b29330?q=80&w=120&auto=format&fit=crop",
			ServiceID:    "s1",
			ServiceName:  "Minimalist Tattoo",
			Price:        1200,
			Date:         "2025-04-15",
			Time:         "10:00",
			Duration:     60,
			Status:       entity.BookingStatusConfirmed,
			Notes:        "Wants a small lotus flower on wrist",
		},
		{
			ID:           "b2",
			ClientName:   "Vikram Singh",
			ClientEmail:  "vikram@example.com",
			ClientAvatar: "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?q=80&w=120&auto=format&fit=crop",
			ServiceID:    "s3",
			ServiceName:  "Medium Design",
			Price:        2500,
			Date:         "2025-04-18",
			Time:         "14:00",
			Duration:     120,
			Status:       entity.BookingStatusConfirmed,
			Notes:        "Mountain range design on forearm",
		},
		{
			ID:           "b3",
			ClientName:   "Aisha Khan",
			ClientEmail:  "aisha@example.com",
			ClientAvatar: "https://images.unsplash.com/photo-1438761681033-6461ffad8d80?q=80&w=120&auto=format&fit=crop",
			ServiceID:    "s2",
			ServiceName:  "Custom Script/Text",
			Price:        800,
			Date:         "2025-04-20",
			Time:         "16:30",
			Duration:     45,
			Status:       entity.BookingStatusPending,
			Notes:        "Sanskrit quote, reference image provided",
		},
		{
			ID:           "b4",
			ClientName:   "Rohit Patel",
			ClientEmail:  "rohit@example.com",
			ClientAvatar: "https://images.unsplash.com/photo-1500648767791-00dcc994a43e?q=80&w=120&auto=format&fit=crop",
			ServiceID:    "s4",
			ServiceName:  "Large Piece",
			Price:        5000,
			Date:         "2025-04-25",
			Time:         "11:00",
			Duration:     180,
			Status:       entity.BookingStatusConfirmed,
			Notes:        "Full sleeve initial consultation and outline",
		},
	}
}

func sampleEarnings() entity.EarningsSummary {
	return entity.EarningsSummary{
		CurrentMonth:   32000,
		LastMonth:      27500,
		ThisWeek:       12500,
		PendingPayouts: 8000,
		RecentTransactions: []entity.Transaction{
			{ID: "t1", ClientName: "Priya Sharma", Amount: 1200, Date: "2025-04-15", Service: "Minimalist Tattoo"},
			{ID: "t2", ClientName: "Vikram Singh", Amount: 2500, Date: "2025-04-18", Service: "Medium Design"},
			{ID: "t3", ClientName: "Rohit Patel", Amount: 5000, Date: "2025-04-25", Service: "Large Piece"},
		},
	}
}

func sampleAvailability() entity.Availability {
	workday := entity.DayAvailability{Morning: true, Afternoon: true}
	fullDay := entity.DayAvailability{Morning: true, Afternoon: true, Evening: true}

	return entity.Availability{
		WeeklySchedule: entity.WeeklySchedule{
			Monday:    workday,
			Tuesday:   workday,
			Wednesday: entity.DayAvailability{},
			Thursday:  fullDay,
			Friday:    fullDay,
			Saturday:  workday,
			Sunday:    entity.DayAvailability{},
		},
		TimeSlots: []entity.TimeSlot{
			{ID: "ts1", Day: "Monday", Date: "2025-04-14", Time: "10:00", Available: true},
			{ID: "ts2", Day: "Monday", Date: "2025-04-14", Time: "11:30", Available: true},
			{ID: "ts3", Day: "Monday", Date: "2025-04-14", Time: "14:00", Available: true},
			{ID: "ts4", Day: "Monday", Date: "2025-04-14", Time: "15:30", Available: false},
			{ID: "ts5", Day: "Tuesday", Date: "2025-04-15", Time: "10:00", Available: true},
			{ID: "ts6", Day: "Tuesday", Date: "2025-04-15", Time: "11:30", Available: false},
			{ID: "ts7", Day: "Tuesday", Date: "2025-04-15", Time: "14:00", Available: true},
			{ID: "ts8", Day: "Tuesday", Date: "2025-04-15", Time: "15:30", Available: true},
			{ID: "ts9", Day: "Thursday", Date: "2025-04-17", Time: "10:00", Available: true},
			{ID: "ts10", Day: "Thursday", Date: "2025-04-17", Time: "11:30", Available: true},
			{ID: "ts11", Day: "Thursday", Date: "2025-04-17", Time: "14:00", Available: true},
			{ID: "ts12", Day: "Thursday", Date: "2025-04-17", Time: "15:30", Available: true},
			{ID: "ts13", Day: "Thursday", Date: "2025-04-17", Time: "18:00", Available: true},
			{ID: "ts14", Day: "Thursday", Date: "2025-04-17", Time: "19:30", Available: true},
			{ID: "ts15", Day: "Friday", Date: "2025-04-18", Time: "10:00", Available: false},
			{ID: "ts16", Day: "Friday", Date: "2025-04-18", Time: "11:30", Available: true},
			{ID: "ts17", Day: "Friday", Date: "2025-04-18", Time: "14:00", Available: false},
			{ID: "ts18", Day: "Friday", Date: "2025-04-18", Time: "15:30", Available: true},
			{ID: "ts19", Day: "Friday", Date: "2025-04-18", Time: "18:00", Available: true},
			{ID: "ts20", Day: "Friday", Date: "2025-04-18", Time: "19:30", Available: true},
			{ID: "ts21", Day: "Saturday", Date: "2025-04-19", Time: "10:00", Available: true},
			{ID: "ts22", Day: "Saturday", Date: "2025-04-19", Time: "11:30", Available: true},
			{ID: "ts23", Day: "Saturday", Date: "2025-04-19", Time: "14:00", Available: true},
			{ID: "ts24", Day: "Saturday", Date: "2025-04-19", Time: "15:30", Available: true},
		},
	}
}
