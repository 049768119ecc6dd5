// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package instance

import (
	"sort"
	"strings"
)

// MapAnswer returns the curated resource ID for an answer under the
// mapping key. Matching is exact first, then case-insensitive, then
// partial (either direction, answers longer than three characters).
// Candidate labels are tried in sorted order so an answer matching
// several labels always resolves to the same resource. Returns "" when
// nothing matches.
func MapAnswer(answer, key string) string {
	resourceMap, ok := resourceMappings[key]
	if !ok {
		return ""
	}

	if id, ok := resourceMap[answer]; ok {
		return id
	}

	labels := make([]string, 0, len(resourceMap))
	for label := range resourceMap {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	for _, label := range labels {
		if strings.EqualFold(label, answer) {
			return resourceMap[label]
		}
	}

	answerLower := strings.ToLower(answer)
	if len(answerLower) > 3 {
		for _, label := range labels {
			labelLower := strings.ToLower(label)
			if strings.Contains(labelLower, answerLower) || strings.Contains(answerLower, labelLower) {
				return resourceMap[label]
			}
		}
	}

	return ""
}

// HasMappings reports whether the key has a curated resource table at
// all. Keys without one never get fallback resources.
func HasMappings(key string) bool {
	_, ok := resourceMappings[key]
	return ok
}

// genericOtherLabels are the bare "Other/Comments" selections that
// carry no text of their own.
var genericOtherLabels = map[string]bool{
	"other":          true,
	"comments":       true,
	"other/comments": true,
	"other (e.g., models, trace links, diagrams, code comments)/comments": true,
}

// OtherLabel recognizes "Other/Comments" style answers. It returns the
// label a fresh resource should carry: "Unknown" when the answer is a
// bare Other selection, the answer text itself when the respondent
// typed something.
func OtherLabel(answer string) (string, bool) {
	lower := strings.ToLower(answer)
	if !strings.Contains(lower, "other") && !strings.Contains(lower, "comment") {
		return "", false
	}
	if genericOtherLabels[strings.TrimSpace(lower)] {
		return "Unknown", true
	}
	return answer, true
}

// resourceMappings are the curated answer-to-resource tables of the
// NLP4RE ID card, keyed by mapping key then option label.
var resourceMappings = map[string]map[string]string{
	"RE task": {
		"Requirements retrieval":                        "R1544135",
		"Requirements tracing":                          "R1544133",
		"Information extraction from legal documents":   "R1544136",
		"Requirements defect detection":                 "R1544134",
		"Requirements classification":                   "R1544130",
		"Model generation":                              "R1544132",
		"App review analysis":                           "R1544129",
		"Dependency and relation extraction":            "R1544131",
		"Test generation":                               "R1544128",
		"Information extraction from requirements":      "R1544127",
	},
	"NLP task type": {
		"Information extraction": "R1544150",
		"Information retrieval":  "R1544149",
		"Classification":         "R1544148",
		"Translation":            "R1544147",
	},
	"NLP task input": {
		"Words":                  "R1544156",
		"Structured/tabular text": "R1544155",
		"Phrases":                "R1544154",
		"Document":               "R1544153",
		"Paragraphs":             "R1544151",
		"Sentences":              "R1544152",
	},
	"NLP task output type": {
		"Text":                    "R1544175",
		"Binary-multi label":      "R1544174",
		"Multi class-single label": "R1544171",
		"Multi class-multi label": "R1544169",
		"Phrases":                 "R1544167",
		"Sentences":               "R1544173",
		"Words":                   "R1544170",
		"Table":                   "R1544172",
		"Graphical diagram":       "R1544168",
		"Document":                "R1544166",
		"Binary-single label":     "R1544161",
		"Executable model":        "R1544165",
		"Paragraphs":              "R1544164",
		"Test cases":              "R1544163",
	},
	"NLP task output translation mapping cardinality": {
		"Not reported": "R1544465",
		"Many to Many": "R1544187",
		"Many to 1":    "R1544186",
		"1 to many":    "R1544185",
		"1 to 1":       "R1544184",
	},
	"NLP data source type": {
		"Textbook examples or cases":                   "R1544232",
		"Student projects":                             "R1544231",
		"Industrial project, publicly available data":  "R1544230",
		"User generated content":                       "R1544229",
		"Toy Requirements":                             "R1544227",
		"Industrial project, proprietary data":         "R1544228",
		"Legal/regulatory documents":                   "R1544226",
		"Community-based open source projects":         "R1544225",
	},
	"NLP data source domain": {
		"Not reported": "R1544550",
	},
	"NLP data abstraction level": {
		"Module-level":    "R1544243",
		"Code-level":      "R1544242",
		"System-level":    "R1544241",
		"Business-level":  "R1544240",
		"Normative-level": "R1544239",
		"User-level":      "R1544238",
	},
	"NLP data format": {
		"Legal text":              "R1544255",
		"Messages in user forums": "R1544254",
		"Social media posts":      "R1544256",
		"Bug/defect reports":      "R1544253",
		"User reviews":            "R1544252",
		"Use cases":               "R1544251",
		"Graphical diagrams":      "R1544247",
		"User stories":            "R1544248",
		"Scenarios":               "R1544250",
		`"Shall" requirements`:    "R1544249",
	},
	"Rigor of data format": {
		"Semantically-augmented natural language":              "R1544261",
		"Restricted grammar based controlled natural language": "R1544260",
		"Template-based controlled natural language":           "R1544259",
		"Unconstrained natural language":                       "R1544258",
	},
	"Public availability": {
		"Upon Request": "R1544270",
		"Partially":    "R1544269",
		"No":           "R1544268",
		"Fully":        "R1544267",
	},
	"License type": {
		"Not reported": "R1544495",
		"No license":   "R1544274",
		"License: Reuse for any purposes":                         "R1544276",
		"License: Modification only for non-commercial purposes":  "R1544275",
		"License: Modification for any purposes":                  "R1544273",
		"License: Reuse only for non-commercial purposes":         "R1544272",
	},
	"Location type": {
		"Not reported":                        "R1544497",
		"In a persistent platform with DOI":   "R1544282",
		"In a repository":                     "R1544281",
		"On a private/corporate website":      "R1544280",
	},
	"Annotator assignment": {
		"One annotator per entry (quality control, possibly on a sample)":  "R1544296",
		"One annotator per entry (no quality control)":                     "R1544295",
		"Partly multiple annotators per entry, partly one annotator per entry": "R1544294",
		"Multiple annotators per entry":                                    "R1544293",
	},
	"Level of application domain experience": {
		"None or unknown":   "R1544298",
		"Domain expert":     "R1544299",
		"Informed outsider": "R1544300",
	},
	"Annotator identity": {
		"The designers of the technique/tool":               "R1544302",
		"People who have direct contact with the designers": "R1544304",
		"Independent annotators":                            "R1544303",
	},
	"Scheme establishement": {
		"Written guidelines with label definitions":           "R1544312",
		"Oral agreement among the annotators":                 "R1544311",
		"Only via class labels":                               "R1544309",
		"Written guidelines with definitions and examples":    "R1544310",
	},
	"Guideline availability": {
		"Not reported":                           "R1544508",
		"Yes, via a persistent URL":              "R1544317",
		"Yes, via a non-persistent URL":          "R1544316",
		"No, but are made available upon request": "R1544315",
		"No":                                     "R1544314",
	},
	"Shared material": {
		"Entire document":     "R1544321",
		"Surrounding context": "R1544320",
		"No":                  "R1544319",
	},
	"Fatigue mitigation technique": {
		"No":  "R1544324",
		"Yes": "R1544323",
	},
	"Intercoder reliability metric": {
		"Not reported":         "R1544513",
		"Krippendorf's Alpha":  "R1544330",
		"Fleiss K":             "R1544329",
		"Cohen's K":            "R1544328",
	},
	"Conflict resolution": {
		"Disagreements were disregarded":                        "R1544338",
		"Not resolved":                                          "R1544335",
		"Majority voting":                                       "R1544336",
		"Resolution by independent expert (not an annotator)":   "R1544337",
		"Resolution by authors":                                 "R1544334",
		"Discussion among annotators":                           "R1544333",
	},
	"Approach type": {
		"Unsupervised DL": "R1544369",
		"Supervised ML":   "R1544368",
		"Rule-based":      "R1544366",
		"Unsupervised ML": "R1544367",
		"Supervised DL":   "R1544365",
	},
	"Algorithm used": {
		"Not reported": "R1544560",
	},
	"Running requirements": {
		"Not reported":                                         "R1544524",
		"Virtual machine / Docker container":                   "R1544383",
		"Reproduce the tool from the explanation in the paper": "R1544382",
		"Import and integrate into your own code":              "R1544381",
		"Compile and run":                                      "R1544380",
		"No installation is needed":                            "R1544379",
	},
	"Documentation": {
		"Not reported":                       "R1544527",
		"Wiki or dedicated website":          "R1544391",
		"README file":                        "R1544390",
		"An academic paper":                  "R1544386",
		"No documentation":                   "R1544389",
		"Tutorial":                           "R1544388",
		"Ready-to-use examples":              "R1544387",
		"Pseudocode /illustration in the paper": "R1544385",
	},
	"Dependency": {
		"Not reported":                     "R1544528",
		"Specific OS":                      "R1544395",
		"Specific hardware":                "R1544398",
		"Proprietary libraries/software":   "R1544396",
		"External knowledge bases":         "R1544397",
		"Open source libraries / software": "R1544394",
		"None":                             "R1544393",
	},
	"Release format": {
		"Library/API":               "R1544411",
		"Pre-trained model":         "R1544409",
		"Source code":               "R1544410",
		"Executable notebook":       "R1544407",
		"Service on the web":        "R1544408",
		"Tool - standalone":         "R1544405",
		"No tool has been released": "R1544406",
	},
	"Evaluation metric": {
		"MAP":                         "R1544443",
		"F-Score":                     "R1544442",
		"NIST-METEOR-ROUGE - BLEU":    "R1544441",
		"Accuracy":                    "R1544440",
		"LAG":                         "R1544439",
		"AUC":                         "R1544438",
		"WER (word error rate)":       "R1544437",
		"Precision/Recall":            "R1544436",
	},
	"Validation procedure": {
		"Cross-project validation": "R1544447",
		"Cross-validation":         "R1544448",
		"Train-test split":         "R1544445",
		"Entire dataset":           "R1544446",
	},
	"Baseline comparsion type": {
		"Theoretical/conceptual":                  "R1544457",
		"None":                                    "R1544454",
		"Existing tool or algorithm":              "R1544455",
		"Reconstructed tool from other research":  "R1544456",
		"Automated, but self-defined":             "R1544453",
		"Human baseline":                          "R1544452",
	},
}
