package service

// starterTask is one item of the onboarding checklist seeded for newcomers.
// DueDays is the offset from the seeding date.
type starterTask struct {
	Title       string
	Description string
	DueDays     int
}

var starterTasks = []starterTask{
	{"Apply for SIN", "Visit Service Canada to apply for SIN", 7},
	{"Open a bank account", "Choose a bank and open chequing account", 10},
	{"Get a phone plan", "Compare plans and pick a budget option", 5},
	{"Find long-term housing", "Search rentals and prepare documents", 21},
	{"Register for health card (OHIP if eligible)", "Check eligibility and apply", 30},
	{"Create a resume (Canadian format)", "Update resume + LinkedIn", 14},
	{"Apply for 5 jobs", "Start applying daily", 14},
	{"Get a transit card (GRT/GO/Presto)", "Buy/activate transit card", 3},
	{"Find a family doctor / clinic", "Search walk-in clinics nearby", 30},
	{"Set up email & document folder", "Create folder for immigration/health/finance", 2},
	{"Build a monthly budget", "Rent, food, phone, travel, savings", 7},
	{"Learn basic tenant rights", "Read Ontario renting rules", 20},
	{"Emergency contacts list", "Save important numbers", 3},
	{"Check important immigration dates", "Study permit, passport expiry etc.", 5},
	{"Book a career services appointment", "College/community career services", 14},
}
