package wizard

// Choices offered by the form. Free values are accepted as well.
var (
	PredefinedSections = []string{
		"Hero", "About", "Services", "Portfolio", "Testimonials", "Pricing",
		"FAQ", "Contact", "Footer", "Blog", "Team", "Curriculum", "Features",
	}

	ColorSchemes = []string{
		"Modern Blue & White", "Elegant Purple & Gold", "Minimalist Black & White",
		"Vibrant Orange & Blue", "Professional Green & Gray", "Creative Pink & Purple",
		"Tech Dark Theme", "Warm Earth Tones", "Ocean Blue & Teal", "Sunset Orange & Red",
	}

	FontStyles = []string{
		"Modern Sans-serif", "Classic Serif", "Elegant Script", "Tech Monospace",
		"Friendly Rounded", "Bold Display", "Clean Minimal", "Professional Corporate",
	}

	Languages = []string{
		"English", "Spanish", "French", "German", "Italian", "Portuguese",
		"Dutch", "Russian", "Chinese", "Japanese", "Korean", "Arabic",
	}
)
