package engine

// Greeting is logged as the first bot turn of every new conversation.
const Greeting = "Hello! I'm here to help answer your questions about our foundation and its programs. How can I assist you today?"

// DefaultRules provides the foundation's chat rule set in evaluation order.
func DefaultRules() RuleTable {
	return RuleTable{
		{
			Name:     "greeting",
			Triggers: []string{"hello", "hi"},
			Response: "Hello! How can I help you today?",
		},
		{
			Name:     "programs",
			Triggers: []string{"program", "initiative"},
			Response: "We have several programs focused on education, healthcare, and economic development. Would you like to know more about a specific area?",
		},
		{
			Name:     "donation",
			Triggers: []string{"donat", "support"},
			Response: "Thank you for your interest in supporting our work! You can donate through our website or contact us for other ways to contribute.",
		},
		{
			Name:     "volunteer",
			Triggers: []string{"volunteer", "help"},
			Response: "We're always looking for dedicated volunteers! Please visit our Get Involved page to see current opportunities.",
		},
		{
			Name:     "contact",
			Triggers: []string{"contact", "reach"},
			Response: "You can reach us at info@empowerfoundation.org or call us at (555) 123-4567. Our office hours are Monday-Friday, 9am-5pm.",
		},
		{
			Name:     "fallback",
			Response: "I'm here to help answer your questions about our foundation and its programs. What would you like to know?",
		},
	}
}
