package vertical

// buckets holds the keyword evidence for each vertical. Terms are matched as
// lowercase substrings; a term never contains a term from another bucket
// (TestKeywords_NoCrossBucketContainment).
var buckets = map[Vertical][]string{
	B2BSaaS: {
		"saas", "b2b", "software", "platform", "dashboard", "workflow",
		"automation", "analytics", "crm", "integrations", "enterprise",
		"subscription", "cloud", "scheduling", "productivity", "devops",
		"onboarding", "invoicing", "pipeline",
	},
	Ecommerce: {
		"ecommerce", "e-commerce", "online store", "shop", "marketplace",
		"checkout", "cart", "products", "merch", "retail", "dropship",
		"boutique", "handmade", "apparel", "sell online", "catalog",
		"jewelry", "sneakers",
	},
	LocalService: {
		"plumber", "plumbing", "electrician", "cleaning", "landscaping",
		"handyman", "contractor", "repair", "salon", "barber", "locksmith",
		"roofing", "hvac", "pest control", "moving company", "dog walking",
		"pet grooming", "near me", "lawn care",
	},
	Restaurant: {
		"restaurant", "cafe", "coffee", "bakery", "menu", "dining", "bistro",
		"pizza", "food truck", "catering", "brunch", "chef", "cuisine",
		"takeout", "reservations", "sushi", "tacos", "dessert",
	},
	Healthcare: {
		"clinic", "health", "medical", "doctor", "dental", "dentist",
		"therapy", "therapist", "patient", "wellness", "hospital",
		"pharmacy", "nurse", "chiropractor", "pediatric", "telemedicine",
	},
	Education: {
		"course", "tutoring", "tutor", "school", "students", "learning",
		"teach", "classes", "academy", "lesson", "curriculum",
		"e-learning", "homework", "exam prep", "university", "edtech",
	},
	RealEstate: {
		"real estate", "realtor", "property", "properties", "homes for sale",
		"listings", "mortgage", "rental", "apartment", "broker", "housing",
		"open house", "landlord", "tenant", "condo", "realty",
	},
	Fitness: {
		"fitness", "gym", "workout", "personal trainer", "yoga", "pilates",
		"crossfit", "training plan", "strength", "cardio", "nutrition",
		"athletes", "marathon", "running club", "weight loss", "hiit",
		"martial arts", "exercise",
	},
	CreativeAgency: {
		"agency", "design studio", "branding", "creative", "portfolio",
		"photography", "videography", "web design", "illustration",
		"copywriting", "advertising", "social media", "content creation",
		"animation", "brand identity", "graphic design", "film production",
	},
	Nonprofit: {
		"nonprofit", "non-profit", "charity", "donate", "donation",
		"volunteer", "fundraising", "foundation", "community", "mission-driven",
		"grants", "advocacy", "disaster relief", "animal shelter", "outreach",
		"sponsorship",
	},
}

// contextRule is a broader fallback used only when no bucket scored.
type contextRule struct {
	vertical Vertical
	terms    []string
}

// contextRules are evaluated in order; the first rule with any matching term
// wins.
var contextRules = []contextRule{
	{Restaurant, []string{"food", "eat", "drink", "meal", "kitchen"}},
	{Ecommerce, []string{"sell", "store", "buy", "order online", "goods"}},
	{Education, []string{"learn", "student", "kids", "skill"}},
	{RealEstate, []string{"house", "home", "rent", "space"}},
	{Fitness, []string{"sport", "train", "body", "run"}},
	{Healthcare, []string{"care", "clinic", "symptom", "heal"}},
	{CreativeAgency, []string{"design", "brand", "artist", "studio", "content"}},
	{Nonprofit, []string{"help", "impact", "cause", "volunteer", "give back"}},
	{LocalService, []string{"service", "local", "appointment", "fix"}},
	{B2BSaaS, []string{"app", "tool", "business", "team", "manage"}},
}

// Keywords returns a copy of the keyword bucket for v.
func Keywords(v Vertical) []string {
	return append([]string(nil), buckets[v]...)
}
