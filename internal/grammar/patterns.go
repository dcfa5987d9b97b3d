package grammar

import "github.com/guvenchemy/MerkutY-BTK/internal/domain"

// defaultPatterns declares the catalog in detection priority order: complex
// constructions first so a perfect-continuous clause is not reported as a
// bare perfect or continuous. Patterns without probes are tracked for level
// bookkeeping but never reported by the detector.
func defaultPatterns() []patternDef {
	return []patternDef{
		{
			key:         "present_perfect_continuous",
			level:       domain.LevelB1,
			description: "have/has been + verb-ing",
			probes: []string{
				`\b(have|has)\s+been\s+\w+ing\b`,
				`\b(have|has)\s+been\s+\w+ing\s+(for|since)\b`,
			},
			subsumes: []string{"present_perfect", "present_continuous"},
		},
		{
			key:         "present_perfect",
			level:       domain.LevelB1,
			description: "have/has + past participle",
			probes: []string{
				`\b(have|has)\s+\w+ed\b`,
				`\b(have|has)\s+(been|gone|done|seen|made|taken|given)\b`,
			},
			subsumes: []string{"past_simple"},
		},
		{
			key:         "past_perfect",
			level:       domain.LevelB2,
			description: "had + past participle",
			probes: []string{
				`\bhad\s+\w+ed\b`,
				`\bhad\s+(been|gone|done|seen|made|taken|given)\b`,
			},
			subsumes: []string{"past_simple"},
		},
		{
			key:         "time_expressions",
			level:       domain.LevelA2,
			description: "for/since and other time markers",
			probes: []string{
				`\b(for|since)\s+(two|three|four|five|six|seven|eight|nine|ten|\d+)\s+(years?|months?|days?|hours?|minutes?)\b`,
				`\b(yesterday|today|tomorrow|now|then|already|just|yet|ever|never)\b`,
				`\b(last|next|this)\s+(year|month|week|day|time)\b`,
			},
		},
		{
			key:         "adjective_intensifiers",
			level:       domain.LevelB1,
			description: "very/really/so + adjective",
			probes: []string{
				`\b(very|really|quite|extremely|incredibly|amazingly|absolutely|totally)\s+\w+\b`,
				`\b(so|such)\s+(a|an)?\s*\w+\b`,
				`\bit\s+is\s+(amazing|wonderful|great|fantastic|terrible|awful|beautiful|interesting)\b`,
			},
		},
		{
			key:         "present_continuous",
			level:       domain.LevelA1,
			description: "am/is/are + verb-ing",
			probes: []string{
				`\b(am|is|are)\s+\w+ing\b`,
			},
		},
		{
			key:         "past_continuous",
			level:       domain.LevelB2,
			description: "was/were + verb-ing",
			probes: []string{
				`\b(was|were)\s+\w+ing\b`,
			},
		},
		{
			key:         "future_continuous",
			level:       domain.LevelB2,
			description: "will be + verb-ing",
			probes: []string{
				`\bwill\s+be\s+\w+ing\b`,
				`\b(am|is|are)\s+going\s+to\s+be\s+\w+ing\b`,
			},
			subsumes: []string{"future_will", "present_continuous"},
		},
		{
			key:         "passive_voice_perfect",
			level:       domain.LevelB2,
			description: "have/has/had been + past participle",
			probes: []string{
				`\b(have|has|had)\s+been\s+\w+ed\b`,
				`\bwill\s+have\s+been\s+\w+ed\b`,
			},
			subsumes: []string{"present_perfect", "passive_voice_simple"},
		},
		{
			key:         "passive_voice_simple",
			level:       domain.LevelB1,
			description: "be + past participle",
			probes: []string{
				`\b(am|is|are|was|were)\s+\w+ed\b`,
				`\b(am|is|are|was|were)\s+(made|taken|given|seen|done|written|spoken)\b`,
			},
		},
		{
			key:         "conditionals_type3",
			level:       domain.LevelC1,
			description: "if + past perfect, would have + participle",
			probes: []string{
				`\bif\s+.*had\s+\w+ed.*would\s+have\b`,
				`\bif\s+.*had\s+.*would\s+have\s+\w+ed\b`,
			},
			subsumes: []string{"conditionals_type2"},
		},
		{
			key:         "conditionals_type2",
			level:       domain.LevelB2,
			description: "if + past, would + infinitive",
			probes: []string{
				`\bif\s+\w+.*would\b`,
				`\bif\s+.*were.*would\b`,
			},
		},
		{
			key:         "conditionals_type1",
			level:       domain.LevelB1,
			description: "if + present, will + infinitive",
			probes: []string{
				`\bif\s+\w+.*,\s*\w+.*will\b`,
				`\bif\s+\w+.*will\b`,
			},
		},
		{
			key:         "modal_verbs_advanced",
			level:       domain.LevelB2,
			description: "modal + have + past participle",
			probes: []string{
				`\b(might\s+have|could\s+have|should\s+have|would\s+have|must\s+have)\s+\w+ed\b`,
				`\b(can't\s+have|couldn't\s+have|shouldn't\s+have)\s+\w+ed\b`,
			},
			subsumes: []string{"modal_verbs_basic"},
		},
		{
			key:         "modal_verbs_basic",
			level:       domain.LevelB1,
			description: "can/could/may/might/must/should",
			probes: []string{
				`\b(can|could|may|might|must|should|would|will|shall)\s+\w+\b`,
				`\b(ought\s+to|used\s+to|had\s+better)\s+\w+\b`,
			},
		},
		{
			key:         "relative_clauses_advanced",
			level:       domain.LevelB2,
			description: "non-defining and nested relative clauses",
			probes: []string{
				`\bthe\s+\w+\s+(who|which|that)\s+\w+`,
				`\b\w+,\s+(who|which)\s+\w+`,
			},
		},
		{
			key:         "relative_clauses_basic",
			level:       domain.LevelB1,
			description: "who/which/that clauses",
			probes: []string{
				`\b(who|which|that|where|when)\s+\w+`,
				`\b(whose|whom)\s+\w+`,
			},
		},
		{
			key:         "question_formation",
			level:       domain.LevelA2,
			description: "wh-questions with auxiliaries",
			probes: []string{
				`\b(what|where|when|why|how|who|which)\s+(do|does|did|are|is|was|were|will|would|can|could)\b`,
				`\b(do|does|did|are|is|was|were|will|would|can|could)\s+\w+\s+\w+\?`,
			},
		},
		{
			key:         "gerunds_infinitives",
			level:       domain.LevelB1,
			description: "verb + gerund / verb + to-infinitive",
			probes: []string{
				`\b(enjoy|love|hate|like|dislike|avoid|finish|stop)\s+\w+ing\b`,
				`\b(want|need|hope|decide|plan|refuse|agree|promise)\s+to\s+\w+\b`,
				`\bit's\s+(easy|hard|difficult|important|necessary)\s+to\s+\w+\b`,
			},
		},
		{
			key:         "articles",
			level:       domain.LevelA1,
			description: "a/an/the and quantifiers",
			probes: []string{
				`\b(a|an)\s+\w+\b`,
				`\bthe\s+\w+\b`,
				`\b(some|any|many|much|few|little|a\s+lot\s+of)\s+\w+\b`,
			},
		},
		{
			key:         "prepositions_time",
			level:       domain.LevelA2,
			description: "in/on/at with times",
			probes: []string{
				`\b(in|on|at)\s+(the\s+)?(morning|afternoon|evening|night|weekend)\b`,
				`\b(in|on|at)\s+\d+\b`,
				`\b(during|throughout|within|by|until|since|for)\s+\w+\b`,
			},
		},
		{
			key:         "prepositions_place",
			level:       domain.LevelA1,
			description: "in/on/at/under with places",
			probes: []string{
				`\b(in|on|at|under|over|behind|in\s+front\s+of|next\s+to|between|among)\s+\w+\b`,
				`\b(here|there|everywhere|somewhere|nowhere|anywhere)\b`,
			},
		},
		{
			key:         "future_will",
			level:       domain.LevelA2,
			description: "will + infinitive",
			probes: []string{
				`\bwill\s+\w+\b`,
				`\bshall\s+\w+\b`,
			},
		},
		{
			key:         "future_going_to",
			level:       domain.LevelA2,
			description: "be going to + infinitive",
			probes: []string{
				`\b(am|is|are)\s+going\s+to\s+\w+\b`,
			},
			subsumes: []string{"present_continuous"},
		},
		{
			key:         "basic_comparatives",
			level:       domain.LevelA2,
			description: "-er than / more ... than",
			probes: []string{
				`\b\w+er\s+than\b`,
				`\bmore\s+\w+\s+than\b`,
				`\bthe\s+\w+est\b`,
				`\bthe\s+most\s+\w+\b`,
				`\b(as\s+\w+\s+as|not\s+as\s+\w+\s+as)\b`,
			},
		},
		{
			key:         "superlatives",
			level:       domain.LevelB2,
			description: "the best/worst/-est",
			probes: []string{
				`\bthe\s+(best|worst|most|least)\s+\w+\b`,
				`\bthe\s+\w+est\s+(in|of|among)\b`,
			},
		},
		{
			key:         "past_simple",
			level:       domain.LevelA2,
			description: "regular and irregular past forms",
			probes: []string{
				`\b(was|were)\b`,
				`\b\w+ed\b`,
				`\b(went|came|saw|did|made|took|gave|got|had|said|told|thought|found|knew)\b`,
			},
		},
		{
			key:         "present_simple",
			level:       domain.LevelA1,
			description: "simple present forms",
			probes: []string{
				`\bit\s+is\s+\w+\b`,
				`\b(do|does)\s+\w+\b`,
				`\b(work|works|live|lives|play|plays|eat|eats|speak|speaks|know|knows)\b`,
			},
		},

		// Patterns without surface probes. They carry level membership for
		// the calculator and dashboards; the detector cannot spot them.
		{key: "basic_questions", level: domain.LevelA1, description: "yes/no questions"},
		{key: "basic_negatives", level: domain.LevelA1, description: "don't/doesn't negation"},
		{key: "basic_modals", level: domain.LevelA2, description: "can/can't for ability"},
		{key: "passive_voice_advanced", level: domain.LevelB2, description: "passive with modals and agents"},
		{key: "reported_speech", level: domain.LevelB2, description: "said (that) + backshift"},
		{key: "subjunctive", level: domain.LevelC1, description: "formal subjunctive mood"},
		{key: "advanced_passive", level: domain.LevelC1, description: "complex passive constructions"},
		{key: "complex_sentences", level: domain.LevelC1, description: "multi-clause subordination"},
		{key: "inversion", level: domain.LevelC1, description: "negative adverbial inversion"},
		{key: "mixed_conditionals", level: domain.LevelC2, description: "mixed time-reference conditionals"},
		{key: "cleft_sentences", level: domain.LevelC2, description: "it-cleft and wh-cleft"},
		{key: "ellipsis", level: domain.LevelC2, description: "omission of recoverable elements"},
		{key: "advanced_discourse_markers", level: domain.LevelC2, description: "nevertheless/notwithstanding"},
	}
}
