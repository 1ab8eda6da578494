package catalog

// Static reference data. Mirrors the scorecard template the interviewers work
// from; never mutated at runtime.

var Categories = []Category{
	{Id: "general-programming", Name: "General Programming", ApplicableTo: []string{"manual", "selenium", "cypress", "playwright"}},
	{Id: "testing-fundamentals", Name: "Testing Fundamentals", ApplicableTo: []string{"manual", "selenium", "cypress", "playwright"}},
	{Id: "problem-solving", Name: "Problem Solving", ApplicableTo: []string{"manual", "selenium", "cypress", "playwright"}},
	{Id: "manual-testing", Name: "Manual Testing", ApplicableTo: []string{"manual"}},
	{Id: "selenium-specific", Name: "Selenium Specific", ApplicableTo: []string{"selenium"}},
	{Id: "cypress-specific", Name: "Cypress Specific", ApplicableTo: []string{"cypress"}},
	{Id: "playwright-specific", Name: "Playwright Specific", ApplicableTo: []string{"playwright"}},
}

var Skills = []Skill{
	// General Programming
	{
		Id: "javascript-basics", Name: "JavaScript Basics", Category: "general-programming",
		ApplicableTo: []string{"manual", "selenium", "cypress", "playwright"},
		Description: []string{
			"Understanding of variables, functions, and basic syntax",
			"Knowledge of data types (strings, numbers, booleans, objects)",
			"Ability to write simple scripts and understand code flow",
			"Familiarity with ES6+ features (arrow functions, destructuring)",
		},
	},
	{
		Id: "css-selectors", Name: "CSS Selectors", Category: "general-programming",
		ApplicableTo: []string{"manual", "selenium", "cypress", "playwright"},
		Description: []string{
			"Understanding of CSS selector syntax and specificity",
			"Knowledge of element, class, ID, and attribute selectors",
			"Ability to write complex selectors for precise targeting",
			"Understanding of pseudo-selectors and combinators",
		},
	},
	{
		Id: "html-knowledge", Name: "HTML Knowledge", Category: "general-programming",
		ApplicableTo: []string{"manual", "selenium", "cypress", "playwright"},
		Description: []string{
			"Understanding of HTML structure and semantic elements",
			"Knowledge of forms, inputs, and user interaction elements",
			"Understanding of accessibility attributes and best practices",
			"Ability to identify and work with different HTML elements",
		},
	},

	// Testing Fundamentals
	{
		Id: "test-design", Name: "Test Design", Category: "testing-fundamentals",
		ApplicableTo: []string{"manual", "selenium", "cypress", "playwright"},
		Description: []string{
			"Ability to create comprehensive test cases and scenarios",
			"Understanding of test coverage and risk-based testing",
			"Knowledge of positive and negative test cases",
			"Ability to design tests for different user personas and workflows",
		},
	},
	{
		Id: "bug-reporting", Name: "Bug Reporting", Category: "testing-fundamentals",
		ApplicableTo: []string{"manual", "selenium", "cypress", "playwright"},
		Description: []string{
			"Ability to write clear, detailed bug reports with steps to reproduce",
			"Understanding of bug severity and priority classification",
			"Knowledge of bug tracking tools and workflows",
			"Ability to provide screenshots, logs, and supporting evidence",
		},
	},
	{
		Id: "test-planning", Name: "Test Planning", Category: "testing-fundamentals",
		ApplicableTo: []string{"manual", "selenium", "cypress", "playwright"},
	},

	// Problem Solving
	{
		Id: "debugging-skills", Name: "Debugging Skills", Category: "problem-solving",
		ApplicableTo: []string{"manual", "selenium", "cypress", "playwright"},
	},
	{
		Id: "analytical-thinking", Name: "Analytical Thinking", Category: "problem-solving",
		ApplicableTo: []string{"manual", "selenium", "cypress", "playwright"},
	},

	// Manual Testing
	{
		Id: "exploratory-testing", Name: "Exploratory Testing", Category: "manual-testing",
		ApplicableTo: []string{"manual"},
		Description: []string{
			"Ability to perform ad-hoc testing without predefined test cases",
			"Understanding of session-based testing and charter creation",
			"Skills in discovering defects through systematic exploration",
			"Ability to adapt testing approach based on findings",
		},
	},
	{
		Id: "usability-testing", Name: "Usability Testing", Category: "manual-testing",
		ApplicableTo: []string{"manual"},
		Description: []string{
			"Understanding of user experience principles and usability heuristics",
			"Ability to evaluate interface design and user workflows",
			"Skills in identifying usability issues and accessibility problems",
			"Experience with user-centered testing approaches",
		},
	},

	// Selenium Specific
	{
		Id: "selenium-webdriver", Name: "Selenium WebDriver", Category: "selenium-specific",
		ApplicableTo: []string{"selenium"},
		Description: []string{
			"Understanding of WebDriver architecture and browser automation",
			"Knowledge of WebDriver API methods and commands",
			"Ability to interact with web elements (click, type, select)",
			"Understanding of browser-specific drivers and capabilities",
		},
	},
	{
		Id: "selenium-grid", Name: "Selenium Grid", Category: "selenium-specific",
		ApplicableTo: []string{"selenium"},
	},
	{
		Id: "selenium-waits", Name: "Selenium Waits", Category: "selenium-specific",
		ApplicableTo: []string{"selenium"},
	},

	// Cypress Specific
	{
		Id: "cypress-basics", Name: "Cypress Basics", Category: "cypress-specific",
		ApplicableTo: []string{"cypress"},
		Description: []string{
			"Understanding of Cypress architecture and test runner",
			"Knowledge of Cypress commands and API methods",
			"Ability to write and execute Cypress tests",
			"Understanding of Cypress debugging and time-travel features",
		},
	},
	{
		Id: "cypress-fixtures", Name: "Cypress Fixtures", Category: "cypress-specific",
		ApplicableTo: []string{"cypress"},
	},
	{
		Id: "cypress-commands", Name: "Cypress Commands", Category: "cypress-specific",
		ApplicableTo: []string{"cypress"},
	},

	// Playwright Specific
	{
		Id: "playwright-basics", Name: "Playwright Basics", Category: "playwright-specific",
		ApplicableTo: []string{"playwright"},
		Description: []string{
			"Understanding of Playwright architecture and multi-browser support",
			"Knowledge of Playwright API and page object model",
			"Ability to write cross-browser tests with Playwright",
			"Understanding of Playwright auto-waiting and retry mechanisms",
		},
	},
	{
		Id: "playwright-trace", Name: "Playwright Trace", Category: "playwright-specific",
		ApplicableTo: []string{"playwright"},
	},
	{
		Id: "playwright-debugging", Name: "Playwright Debugging", Category: "playwright-specific",
		ApplicableTo: []string{"playwright"},
	},
}
