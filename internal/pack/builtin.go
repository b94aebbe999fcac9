package pack

func builtinPacks() []Pack {
	return []Pack{
		{
			Name:        "python",
			Description: "Python keywords and common identifiers",
			Words: []string{
				"def", "class", "import", "from", "return", "yield",
				"lambda", "async", "await", "with", "as", "try",
				"except", "finally", "raise", "None", "True", "False",
				"list", "dict", "set", "tuple", "str", "int",
				"float", "bool", "len", "range", "print", "enumerate",
			},
		},
		{
			Name:        "english",
			Description: "Common English words (builtin)",
			Words: []string{
				"the", "be", "to", "of", "and", "a", "in", "that", "have", "I",
				"it", "for", "not", "on", "with", "he", "as", "you", "do", "at",
				"this", "but", "his", "by", "from", "they", "we", "say", "her", "she",
				"or", "an", "will", "my", "one", "all", "would", "there", "their", "what",
				"so", "up", "out", "if", "about", "who", "get", "which", "go", "me",
				"when", "make", "can", "like", "time", "no", "just", "him", "know", "take",
				"people", "into", "year", "your", "good", "some", "could", "them", "see", "other",
				"than", "then", "now", "look", "only", "come", "its", "over", "think", "also",
				"back", "after", "use", "two", "how", "our", "work", "first", "well", "way",
				"even", "new", "want", "because", "any", "these", "give", "day", "most", "us",
			},
		},
	}
}
