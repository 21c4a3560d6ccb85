package integration_test

const (
	// User related constants
	TestUserFirstName = "John"
	TestUserLastName  = "Doe"
	TestUserEmail     = "test@example.com"
	TestAdminEmail    = "admin@example.com"
	TestUserPassword  = "Test123!@#"

	// Catalog related constants
	TestShowTitle       = "Across the Milky Way"
	TestShowDescription = "A guided flight through the spiral arms of our home galaxy."
	TestThemeName       = "Galaxies"
	TestDomeName        = "Main Dome"
)
