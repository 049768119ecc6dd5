// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package instance creates NLP4RE ID card instances on ORKG from survey
// documents, following the published template structure: a paper
// resource in the target class, nested component resources for each
// section, and per-question values mapped to curated resources or
// literals.
package instance

// Property is one predicate of the NLP4RE ID card template. Properties
// with children are components: they become their own resource, linked
// from the parent, with the children populated on it.
type Property struct {
	ID            string
	Label         string
	Cardinality   string
	Description   string
	QuestionCodes []string
	MappingKey    string

	// CommaSeparated splits multi-valued free-text answers on commas.
	CommaSeparated bool

	// Component fields, set when the property has children.
	SubtemplateID string
	ClassID       string
	Children      []Property
}

// Catalog returns the NLP4RE ID card predicate tree. The IDs are the
// published predicates, subtemplates, and classes of the template on
// incubating.orkg.org.
func Catalog() []Property {
	return []Property{
		{
			ID:            "P181002",
			Label:         "RE task",
			Cardinality:   "one to one",
			Description:   "What requirements engineering task is your study addressing?",
			QuestionCodes: []string{"I.1"},
			MappingKey:    "RE task",
		},
		{
			ID:            "P181003",
			Label:         "NLP task",
			Cardinality:   "one to one",
			Description:   "What natural language processing task is your study tackling?",
			SubtemplateID: "R1544138",
			ClassID:       "C121004",
			Children: []Property{
				{
					ID:            "P181004",
					Label:         "NLP task type",
					Cardinality:   "one to many",
					Description:   "What type of natural language processing task is your study tackling?",
					QuestionCodes: []string{"II.1"},
					MappingKey:    "NLP task type",
				},
				{
					ID:            "P181005",
					Label:         "NLP task input",
					Cardinality:   "one to many",
					Description:   "What is the input of your natural language processing task?",
					QuestionCodes: []string{"III.1"},
					MappingKey:    "NLP task input",
				},
				{
					ID:            "P181006",
					Label:         "NLP task output type",
					Cardinality:   "one to many",
					Description:   "What is the output of your natural language processing task?",
					QuestionCodes: []string{"III.2", "III.4", "III.6", "III.8", "III.9"},
					MappingKey:    "NLP task output type",
				},
				{
					ID:            "P181007",
					Label:         "NLP task output classification label",
					Cardinality:   "one to one",
					Description:   "What are the labels that can be assigned?",
					QuestionCodes: []string{"III.3"},
					MappingKey:    "NLP task output classification label",
				},
				{
					ID:            "P181008",
					Label:         "NLP task output extracted element",
					Cardinality:   "one to one",
					Description:   "What is the type of the extracted elements?",
					QuestionCodes: []string{"III.5"},
					MappingKey:    "NLP task output extracted element",
				},
				{
					ID:            "P181009",
					Label:         "NLP task output translation mapping cardinality",
					Cardinality:   "one to one",
					Description:   "What is the translation mapping cardinality between initial input and final output?",
					QuestionCodes: []string{"III.7"},
					MappingKey:    "NLP task output translation mapping cardinality",
				},
			},
		},
		{
			ID:            "P181011",
			Label:         "NLP dataset",
			Cardinality:   "one to one",
			Description:   "What natural language processing dataset is your study using?",
			SubtemplateID: "R1544216",
			ClassID:       "C121010",
			Children: []Property{
				{
					ID:            "P181015",
					Label:         "NLP data item",
					Cardinality:   "one to one",
					Description:   "How many data items do you process?",
					QuestionCodes: []string{"IV.1"},
					MappingKey:    "NLP data item",
				},
				{
					ID:            "P181016",
					Label:         "NLP data production time",
					Cardinality:   "one to one",
					Description:   "In which year or interval of year were the data produced?",
					QuestionCodes: []string{"IV.2"},
					MappingKey:    "NLP data prodcution time",
				},
				{
					ID:            "P181017",
					Label:         "NLP data source",
					Cardinality:   "one to one",
					Description:   "What is the source of the data?",
					SubtemplateID: "R1544223",
					ClassID:       "C121011",
					Children: []Property{
						{
							ID:            "P181018",
							Label:         "NLP data source type",
							Cardinality:   "one to one",
							Description:   "What is the source type of the data?",
							QuestionCodes: []string{"IV.3"},
							MappingKey:    "NLP data source type",
						},
						{
							ID:            "P181019",
							Label:         "Number of data sources",
							Cardinality:   "one to one",
							Description:   "From how many different sources your data comes from?",
							QuestionCodes: []string{"IV.9"},
							MappingKey:    "Number of data sources",
						},
						{
							ID:             "P181020",
							Label:          "NLP data source domain",
							Cardinality:    "one to many",
							Description:    "Please list which domains your data belongs to?",
							QuestionCodes:  []string{"IV.8"},
							MappingKey:     "NLP data source domain",
							CommaSeparated: true,
						},
					},
				},
				{
					ID:            "P181021",
					Label:         "NLP data abstraction level",
					Cardinality:   "one to many",
					Description:   "What is the level of abstraction of the data?",
					QuestionCodes: []string{"IV.4"},
					MappingKey:    "NLP data abstraction level",
				},
				{
					ID:            "P181022",
					Label:         "NLP data type",
					Cardinality:   "one to one",
					Description:   "What is the type of the data?",
					SubtemplateID: "R1544245",
					ClassID:       "C121015",
					Children: []Property{
						{
							ID:            "P181023",
							Label:         "NLP data format",
							Cardinality:   "one to one",
							Description:   "What is the format of the data?",
							QuestionCodes: []string{"IV.5"},
							MappingKey:    "NLP data format",
						},
						{
							ID:            "P181024",
							Label:         "Rigor of data format",
							Cardinality:   "one to many",
							Description:   "How rigorous is the data format?",
							QuestionCodes: []string{"IV.6"},
							MappingKey:    "Rigor of data format",
						},
						{
							ID:            "P181025",
							Label:         "Natural language",
							Cardinality:   "one to one",
							Description:   "What is the natural language of the data?",
							QuestionCodes: []string{"IV.7"},
							MappingKey:    "Natural language",
						},
					},
				},
				{
					ID:            "P181026",
					Label:         "License",
					Cardinality:   "one to one",
					Description:   "What license information applies?",
					SubtemplateID: "R1544265",
					ClassID:       "C121018",
					Children: []Property{
						{
							ID:            "P181027",
							Label:         "Public availability",
							Cardinality:   "one to one",
							Description:   "Is the dataset publicly available?",
							QuestionCodes: []string{"IV.10"},
							MappingKey:    "Public availability",
						},
						{
							ID:            "P181028",
							Label:         "License type",
							Cardinality:   "one to one",
							Description:   "What is the type of the license?",
							QuestionCodes: []string{"IV.11"},
							MappingKey:    "License type",
						},
					},
				},
				{
					ID:            "P181029",
					Label:         "Dataset location",
					Cardinality:   "one to one",
					Description:   "Where is the dataset stored?",
					SubtemplateID: "R1544278",
					ClassID:       "C121022",
					Children: []Property{
						{
							ID:            "P181030",
							Label:         "Location type",
							Cardinality:   "one to many",
							Description:   "Where is the dataset stored?",
							QuestionCodes: []string{"IV.12"},
							MappingKey:    "Location type",
						},
						{
							ID:            "P1003",
							Label:         "URL",
							Cardinality:   "one to one",
							Description:   "Provide a URL to the dataset",
							QuestionCodes: []string{"IV.13"},
							MappingKey:    "url",
						},
					},
				},
			},
		},
		{
			ID:            "P181031",
			Label:         "Annotation Process",
			Cardinality:   "one to one",
			Description:   "What annotation process did you use for your dataset?",
			SubtemplateID: "R1544287",
			ClassID:       "C121025",
			Children: []Property{
				{
					ID:            "P181032",
					Label:         "Annotator",
					Cardinality:   "one to one",
					Description:   "Who are the annotators of your dataset?",
					SubtemplateID: "R1544290",
					ClassID:       "C121026",
					Children: []Property{
						{
							ID:            "P59120",
							Label:         "Number of annotators",
							Cardinality:   "one to one",
							Description:   "How many annotators have been involved?",
							QuestionCodes: []string{"V.1"},
							MappingKey:    "Number of annotators",
						},
						{
							ID:            "P181033",
							Label:         "Annotator assignment",
							Cardinality:   "one to many",
							Description:   "How are the entries annotated?",
							QuestionCodes: []string{"V.2"},
							MappingKey:    "Annotator assignment",
						},
						{
							ID:            "P181034",
							Label:         "Level of application domain experience",
							Cardinality:   "one to many",
							Description:   "What is the level of application domain experience?",
							QuestionCodes: []string{"V.3"},
							MappingKey:    "Level of application domain experience",
						},
						{
							ID:            "P181035",
							Label:         "Annotator identity",
							Cardinality:   "one to many",
							Description:   "Who are the annotators?",
							QuestionCodes: []string{"V.4"},
							MappingKey:    "Annotator identity",
						},
					},
				},
				{
					ID:            "P181036",
					Label:         "Annotation scheme",
					Cardinality:   "one to many",
					Description:   "What is the annotation scheme used?",
					SubtemplateID: "R1544307",
					ClassID:       "C121030",
					Children: []Property{
						{
							ID:            "P181037",
							Label:         "Scheme establishment",
							Cardinality:   "one to many",
							Description:   "How was the annotation scheme established?",
							QuestionCodes: []string{"V.5"},
							MappingKey:    "Scheme establishement",
						},
						{
							ID:            "P181038",
							Label:         "Guideline availability",
							Cardinality:   "one to many",
							Description:   "Did you make the written guidelines public?",
							QuestionCodes: []string{"V.6"},
							MappingKey:    "Guideline availability",
						},
					},
				},
				{
					ID:            "P181039",
					Label:         "Shared material",
					Cardinality:   "one to one",
					Description:   "Did you share other information to support annotators?",
					QuestionCodes: []string{"V.7"},
					MappingKey:    "Shared material",
				},
				{
					ID:            "P181040",
					Label:         "Fatigue mitigation technique",
					Cardinality:   "one to one",
					Description:   "Did you employ techniques to mitigate fatigue effects?",
					QuestionCodes: []string{"V.8"},
					MappingKey:    "Fatigue mitigation technique",
				},
				{
					ID:            "P181041",
					Label:         "Annotator agreement",
					Cardinality:   "one to one",
					Description:   "What annotator agreement did you apply?",
					SubtemplateID: "R1544326",
					ClassID:       "C121035",
					Children: []Property{
						{
							ID:            "P181042",
							Label:         "Intercoder reliability metric",
							Cardinality:   "one to many",
							Description:   "What are the metrics used to measure intercoder reliability?",
							QuestionCodes: []string{"V.9"},
							MappingKey:    "Intercoder reliability metric",
						},
						{
							ID:            "P181044",
							Label:         "Conflict resolution",
							Cardinality:   "one to many",
							Description:   "How were conflicts resolved?",
							QuestionCodes: []string{"V.10"},
							MappingKey:    "Conflict resolution",
						},
						{
							ID:            "P181045",
							Label:         "Measured agreement",
							Cardinality:   "one to one",
							Description:   "What is the measured agreement?",
							QuestionCodes: []string{"V.11"},
							MappingKey:    "Measured agreement",
						},
					},
				},
			},
		},
		{
			ID:            "P181046",
			Label:         "Implemented approach",
			Cardinality:   "one to one",
			Description:   "What approach did you implement?",
			SubtemplateID: "R1544363",
			ClassID:       "C121038",
			Children: []Property{
				{
					ID:            "P5043",
					Label:         "Approach type",
					Cardinality:   "one to many",
					Description:   "What is the type of proposed solution?",
					QuestionCodes: []string{"VI.1"},
					MappingKey:    "Approach type",
				},
				{
					ID:             "P58069",
					Label:          "Algorithm used",
					Cardinality:    "one to many",
					Description:    "What algorithms are used in the tool?",
					QuestionCodes:  []string{"VI.2"},
					MappingKey:     "Algorithm used",
					CommaSeparated: true,
				},
				{
					ID:            "P181047",
					Label:         "Running requirements",
					Cardinality:   "one to many",
					Description:   "What needs to be done for running the tool?",
					QuestionCodes: []string{"VI.4"},
					MappingKey:    "Running requirements",
				},
				{
					ID:            "P41835",
					Label:         "Documentation",
					Cardinality:   "one to many",
					Description:   "What type of documentation has been provided?",
					QuestionCodes: []string{"VI.5"},
					MappingKey:    "Documentation",
				},
				{
					ID:            "P181048",
					Label:         "Dependency",
					Cardinality:   "one to many",
					Description:   "What type of dependencies does the tool have?",
					QuestionCodes: []string{"VI.6"},
					MappingKey:    "Dependency",
				},
				{
					ID:            "P181049",
					Label:         "License type",
					Cardinality:   "one to one",
					Description:   "What license has been used?",
					QuestionCodes: []string{"VI.8"},
					MappingKey:    "License type",
				},
				{
					ID:            "P181050",
					Label:         "Release",
					Cardinality:   "one to one",
					Description:   "How was the tool released?",
					SubtemplateID: "R1544401",
					ClassID:       "C121044",
					Children: []Property{
						{
							ID:            "P181051",
							Label:         "Release format",
							Cardinality:   "one to many",
							Description:   "What has been released?",
							QuestionCodes: []string{"VI.3"},
							MappingKey:    "Release format",
						},
						{
							ID:            "P181052",
							Label:         "Location type",
							Cardinality:   "one to many",
							Description:   "How is the tool released?",
							QuestionCodes: []string{"VI.7"},
							MappingKey:    "Location type",
						},
						{
							ID:            "P1003",
							Label:         "URL",
							Cardinality:   "one to one",
							Description:   "Where is the tool released?",
							QuestionCodes: []string{"VI.9"},
							MappingKey:    "url",
						},
					},
				},
			},
		},
		{
			ID:            "P181053",
			Label:         "Evaluation",
			Cardinality:   "one to one",
			Description:   "What evaluation did you apply?",
			SubtemplateID: "R1544421",
			ClassID:       "C121047",
			Children: []Property{
				{
					ID:             "P110006",
					Label:          "Evaluation metric",
					Cardinality:    "one to many",
					Description:    "What metrics are used to evaluate the approach?",
					QuestionCodes:  []string{"VII.1"},
					MappingKey:     "Evaluation metric",
					CommaSeparated: true,
				},
				{
					ID:            "P181054",
					Label:         "Validation procedure",
					Cardinality:   "one to many",
					Description:   "What is the validation procedure?",
					QuestionCodes: []string{"VII.2"},
					MappingKey:    "Validation procedure",
				},
				{
					ID:            "P181055",
					Label:         "Baseline comparison",
					Cardinality:   "one to one",
					Description:   "What is the baseline comparison?",
					SubtemplateID: "R1544450",
					ClassID:       "C121050",
					Children: []Property{
						{
							ID:            "P181056",
							Label:         "Baseline comparison type",
							Cardinality:   "one to many",
							Description:   "What baseline do you compare against?",
							QuestionCodes: []string{"VII.3"},
							MappingKey:    "Baseline comparsion type",
						},
						{
							ID:            "P181057",
							Label:         "Baseline comparison details",
							Cardinality:   "one to one",
							Description:   "Please provide more details about the baseline?",
							QuestionCodes: []string{"VII.4"},
							MappingKey:    "Baseline comparison details",
						},
					},
				},
			},
		},
	}
}

// literalKeys are the mapping keys whose answers are free text and
// become literals rather than resources.
var literalKeys = map[string]bool{
	"NLP data item":                        true,
	"NLP data prodcution time":             true,
	"Natural language":                     true,
	"Number of data sources":               true,
	"url":                                  true,
	"Number of annotators":                 true,
	"Measured agreement":                   true,
	"NLP task output classification label": true,
	"NLP task output extracted element":    true,
	"Baseline comparison details":          true,
}

// classMappings gives the catalog class a fresh resource joins when an
// answer under the key has no predefined mapping.
var classMappings = map[string]string{
	"RE task":                              "C121003",
	"NLP task type":                        "C121005",
	"NLP task input":                       "C121006",
	"NLP task output type":                 "C121008",
	"NLP task output translation mapping cardinality": "C121009",
	"NLP data source type":                 "C121012",
	"NLP data source domain":               "C121053",
	"NLP data abstraction level":           "C121013",
	"NLP data format":                      "C121016",
	"Rigor of data format":                 "C121017",
	"Public availability":                  "C121019",
	"License type":                         "C121020",
	"Location type":                        "C121024",
	"Annotator assignment":                 "C121027",
	"Level of application domain experience": "C121028",
	"Annotator identity":                   "C121029",
	"Scheme establishement":                "C121031",
	"Guideline availability":               "C121032",
	"Shared material":                      "C121033",
	"Fatigue mitigation technique":         "C121034",
	"Intercoder reliability metric":        "C121036",
	"Conflict resolution":                  "C121037",
	"Approach type":                        "C121039",
	"Algorithm used":                       "C121040",
	"Running requirements":                 "C121041",
	"Documentation":                        "C121042",
	"Dependency":                           "C121043",
	"Release format":                       "C121046",
	"Evaluation metric":                    "C121048",
	"Validation procedure":                 "C121049",
	"Baseline comparsion type":             "C121051",
}
