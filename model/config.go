package model

// Classification bundles the curated lookup tables the resolvers run on.
// Instances are injected, never mutated after construction; tests substitute
// small tables of their own.
type Classification struct {
	// SuperclassRoots maps a concept identifier to its 4-digit superclass code.
	SuperclassRoots map[string]string
	// Fallbacks holds the one fixed fallback superclass code per POS, used
	// when no hypernym path yields a SuperclassRoots hit.
	Fallbacks map[Pos]string
	// AbstractAncestors and ConcreteAncestors are the two disjoint reference
	// sets for abstractness classification.
	AbstractAncestors map[string]struct{}
	ConcreteAncestors map[string]struct{}
	// Overrides pins the valence digit of a lowercase surface word,
	// unconditionally beating lexical scores and antonym propagation.
	Overrides map[string]Valence
	// ProbeWords is the fixed list the validator's sample-lookup check reports on.
	ProbeWords []string
}

// FallbackFor returns the POS-keyed fallback superclass code. An unknown POS
// falls back to the noun code.
func (c *Classification) FallbackFor(pos Pos) string {
	if code, ok := c.Fallbacks[pos]; ok {
		return code
	}
	return c.Fallbacks[Noun]
}

// IsOverridden reports whether the word carries a pinned valence.
func (c *Classification) IsOverridden(word string) bool {
	_, ok := c.Overrides[word]
	return ok
}

func set(names ...string) map[string]struct{} {
	s := make(map[string]struct{}, len(names))
	for _, n := range names {
		s[n] = struct{}{}
	}
	return s
}

// DefaultClassification returns the curated production tables: the expanded
// superclass hierarchy, the abstract/concrete reference sets, the valence
// override list, and the validator probe words.
func DefaultClassification() *Classification {
	return &Classification{
		SuperclassRoots: defaultSuperclassRoots(),
		Fallbacks: map[Pos]string{
			Noun:      "0999",
			Verb:      "2999",
			Adjective: "3999",
			Adverb:    "4999",
		},
		AbstractAncestors: set(
			"abstraction.n.06", "psychological_feature.n.01", "cognition.n.01",
			"attribute.n.02", "relation.n.01", "communication.n.02", "measure.n.02",
			"state.n.02", "event.n.01", "group.n.01", "feeling.n.01", "emotion.n.01",
		),
		ConcreteAncestors: set(
			"physical_entity.n.01", "object.n.01", "artifact.n.01", "organism.n.01",
			"substance.n.01", "body_part.n.01", "natural_object.n.01", "food.n.01",
			"location.n.01", "structure.n.01", "person.n.01", "animal.n.01",
		),
		Overrides: map[string]Valence{
			// Employment vocabulary whose corpus scores come out neutral or
			// even positive while usage is clearly polarized.
			"fired":      Negative,
			"layoff":     Negative,
			"layoffs":    Negative,
			"laid off":   Negative,
			"downsized":  Negative,
			"terminated": Negative,
			"demoted":    Negative,
			"unemployed": Negative,
			"jobless":    Negative,
			"hired":      Positive,
			"promoted":   Positive,
			"raise":      Positive,
			"bonus":      Positive,
		},
		ProbeWords: []string{
			"layoff", "fired", "happy", "sad", "worried", "fear", "angry",
			"manager", "salary", "stress", "anxiety", "love", "hate",
		},
	}
}

func defaultSuperclassRoots() map[string]string {
	return map[string]string{
		// Nouns: physical entities (0001-0099)
		"entity.n.01":          "0001",
		"physical_entity.n.01": "0002",
		"thing.n.12":           "0003",
		"object.n.01":          "0004",
		"whole.n.02":           "0005",
		"part.n.01":            "0006",
		"artifact.n.01":        "0007",
		"natural_object.n.01":  "0008",

		"living_thing.n.01": "0010",
		"organism.n.01":     "0011",
		"person.n.01":       "0012",
		"human.n.01":        "0013",
		"animal.n.01":       "0014",
		"mammal.n.01":       "0015",
		"bird.n.01":         "0016",
		"fish.n.01":         "0017",
		"insect.n.01":       "0018",
		"plant.n.02":        "0019",
		"tree.n.01":         "0020",
		"flower.n.01":       "0021",

		"body.n.01":      "0025",
		"body_part.n.01": "0026",
		"organ.n.01":     "0027",
		"disease.n.01":   "0028",
		"illness.n.01":   "0029",
		"symptom.n.01":   "0030",

		"substance.n.01": "0035",
		"matter.n.03":    "0036",
		"material.n.01":  "0037",
		"food.n.01":      "0038",
		"liquid.n.01":    "0039",
		"solid.n.01":     "0040",

		"location.n.01":  "0045",
		"region.n.01":    "0046",
		"area.n.01":      "0047",
		"place.n.02":     "0048",
		"structure.n.01": "0050",
		"building.n.01":  "0051",
		"room.n.01":      "0052",
		"facility.n.01":  "0053",

		"container.n.01":  "0055",
		"vehicle.n.01":    "0056",
		"clothing.n.01":   "0057",
		"furnishing.n.01": "0058",
		"device.n.01":     "0060",
		"tool.n.01":       "0061",
		"machine.n.01":    "0062",
		"instrument.n.01": "0063",
		"equipment.n.01":  "0064",
		"computer.n.01":   "0065",
		"weapon.n.01":     "0066",

		// Nouns: abstract entities (0100-0199)
		"abstraction.n.06":     "0100",
		"abstract_entity.n.01": "0101",

		"psychological_feature.n.01": "0105",
		"cognition.n.01":             "0106",
		"knowledge.n.01":             "0107",
		"belief.n.01":                "0108",
		"idea.n.01":                  "0109",
		"concept.n.01":               "0110",
		"thought.n.01":               "0111",
		"plan.n.01":                  "0112",
		"intention.n.01":             "0113",

		"feeling.n.01":   "0120",
		"emotion.n.01":   "0121",
		"fear.n.01":      "0122",
		"anger.n.01":     "0123",
		"sadness.n.01":   "0124",
		"happiness.n.01": "0125",
		"joy.n.01":       "0126",
		"love.n.01":      "0127",
		"hate.n.01":      "0128",
		"anxiety.n.02":   "0129",
		"worry.n.01":     "0130",
		"hope.n.01":      "0131",
		"despair.n.01":   "0132",
		"surprise.n.01":  "0133",
		"disgust.n.01":   "0134",

		"state.n.02":     "0140",
		"condition.n.01": "0141",
		"situation.n.01": "0142",
		"status.n.01":    "0143",
		"health.n.01":    "0144",
		"stress.n.01":    "0145",

		"communication.n.02": "0150",
		"message.n.02":       "0151",
		"language.n.01":      "0152",
		"word.n.01":          "0153",
		"document.n.01":      "0154",
		"speech.n.02":        "0155",

		"time.n.05":        "0160",
		"time_period.n.01": "0161",
		"event.n.01":       "0162",
		"act.n.02":         "0163",
		"activity.n.01":    "0164",
		"process.n.06":     "0165",
		"change.n.01":      "0166",

		"group.n.01":        "0170",
		"social_group.n.01": "0171",
		"organization.n.01": "0172",
		"institution.n.01":  "0173",
		"company.n.01":      "0174",
		"team.n.01":         "0175",
		"family.n.01":       "0176",

		"relation.n.01":  "0180",
		"attribute.n.02": "0181",
		"quality.n.01":   "0182",
		"quantity.n.01":  "0183",
		"measure.n.02":   "0184",
		"number.n.02":    "0185",

		// Nouns: work & employment (0200-0249)
		"occupation.n.01": "0200",
		"job.n.02":        "0201",
		"profession.n.01": "0202",
		"employment.n.01": "0203",
		"work.n.01":       "0204",
		"career.n.01":     "0205",
		"worker.n.01":     "0206",
		"employee.n.01":   "0207",
		"employer.n.01":   "0208",

		"management.n.01": "0210",
		"manager.n.01":    "0211",
		"supervisor.n.01": "0212",
		"executive.n.01":  "0213",
		"leader.n.01":     "0214",
		"director.n.01":   "0215",
		"boss.n.01":       "0216",

		"wage.n.01":         "0220",
		"salary.n.01":       "0221",
		"income.n.01":       "0222",
		"payment.n.01":      "0223",
		"bonus.n.01":        "0224",
		"benefit.n.01":      "0225",
		"compensation.n.01": "0226",

		"dismissal.n.01":   "0230",
		"discharge.n.01":   "0231",
		"termination.n.01": "0232",
		"layoff.n.01":      "0233",
		"firing.n.01":      "0234",
		"resignation.n.01": "0235",
		"retirement.n.01":  "0236",
		"downsizing.n.01":  "0237",

		// Nouns: money & economics (0250-0299)
		"money.n.01":      "0250",
		"currency.n.01":   "0251",
		"wealth.n.01":     "0252",
		"asset.n.01":      "0253",
		"debt.n.01":       "0254",
		"cost.n.01":       "0255",
		"price.n.01":      "0256",
		"profit.n.01":     "0257",
		"loss.n.01":       "0258",
		"budget.n.01":     "0259",
		"investment.n.01": "0260",
		"stock.n.01":      "0261",

		// Verbs (2000-2999)
		"be.v.01":    "2000",
		"have.v.01":  "2001",
		"exist.v.01": "2002",

		"change.v.01":   "2010",
		"become.v.01":   "2011",
		"increase.v.01": "2012",
		"decrease.v.01": "2013",
		"grow.v.01":     "2014",
		"reduce.v.01":   "2015",

		"move.v.02":   "2020",
		"travel.v.01": "2021",
		"go.v.01":     "2022",
		"come.v.01":   "2023",
		"run.v.01":    "2024",
		"walk.v.01":   "2025",
		"leave.v.01":  "2026",
		"arrive.v.01": "2027",

		"transfer.v.05": "2030",
		"give.v.01":     "2031",
		"take.v.01":     "2032",
		"get.v.01":      "2033",
		"receive.v.01":  "2034",
		"send.v.01":     "2035",

		"act.v.01":     "2040",
		"do.v.01":      "2041",
		"make.v.03":    "2042",
		"create.v.02":  "2043",
		"produce.v.01": "2044",
		"build.v.01":   "2045",
		"destroy.v.02": "2046",
		"break.v.01":   "2047",
		"fix.v.01":     "2048",

		"communicate.v.02": "2050",
		"say.v.01":         "2051",
		"tell.v.01":        "2052",
		"speak.v.01":       "2053",
		"write.v.01":       "2054",
		"read.v.01":        "2055",
		"ask.v.01":         "2056",
		"answer.v.01":      "2057",

		"think.v.03":      "2060",
		"know.v.01":       "2061",
		"believe.v.01":    "2062",
		"understand.v.01": "2063",
		"learn.v.01":      "2064",
		"remember.v.01":   "2065",
		"forget.v.01":     "2066",
		"decide.v.01":     "2067",
		"plan.v.01":       "2068",

		"perceive.v.02": "2070",
		"see.v.01":      "2071",
		"hear.v.01":     "2072",
		"feel.v.01":     "2073",
		"notice.v.01":   "2074",

		"feel.v.03":  "2080",
		"like.v.02":  "2081",
		"love.v.01":  "2082",
		"hate.v.01":  "2083",
		"fear.v.01":  "2084",
		"worry.v.01": "2085",
		"hope.v.01":  "2086",
		"want.v.02":  "2087",
		"need.v.01":  "2088",

		"interact.v.01": "2090",
		"meet.v.01":     "2091",
		"help.v.01":     "2092",
		"support.v.01":  "2093",
		"work.v.02":     "2094",
		"manage.v.01":   "2095",
		"lead.v.01":     "2096",

		"employ.v.01":    "2100",
		"hire.v.01":      "2101",
		"fire.v.02":      "2102",
		"dismiss.v.02":   "2103",
		"terminate.v.04": "2104",
		"resign.v.01":    "2105",
		"retire.v.01":    "2106",
		"quit.v.01":      "2107",
		"layoff.v.01":    "2108",

		// Adjectives (3000-3999)
		"good.a.01":  "3000",
		"bad.a.01":   "3001",
		"great.a.01": "3002",
		"small.a.01": "3003",
		"big.a.01":   "3004",
		"new.a.01":   "3005",
		"old.a.01":   "3006",

		"happy.a.01":        "3010",
		"sad.a.01":          "3011",
		"angry.a.01":        "3012",
		"afraid.a.01":       "3013",
		"worried.a.01":      "3014",
		"anxious.a.01":      "3015",
		"nervous.a.01":      "3016",
		"stressed.a.01":     "3017",
		"depressed.a.01":    "3018",
		"hopeful.a.01":      "3019",
		"frustrated.a.01":   "3020",
		"disappointed.a.01": "3021",
		"satisfied.a.01":    "3022",
		"content.a.01":      "3023",

		"employed.a.01":     "3030",
		"unemployed.a.01":   "3031",
		"busy.a.01":         "3032",
		"productive.a.01":   "3033",
		"efficient.a.01":    "3034",
		"incompetent.a.01":  "3035",
		"professional.a.01": "3036",
		"qualified.a.01":    "3037",
		"experienced.a.01":  "3038",

		// Adverbs (4000-4999)
		"very.r.01":      "4000",
		"really.r.01":    "4001",
		"quickly.r.01":   "4002",
		"slowly.r.01":    "4003",
		"well.r.01":      "4004",
		"badly.r.01":     "4005",
		"never.r.01":     "4006",
		"always.r.01":    "4007",
		"often.r.01":     "4008",
		"sometimes.r.01": "4009",
	}
}
