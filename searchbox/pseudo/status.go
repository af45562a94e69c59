package pseudo

import "github.com/nonibytes/searchbox/searchbox/schema"

// ArchivedAttr is the filter key that excludes or selects archived entries.
const ArchivedAttr = "sys.archivedAt[exists]"

// StatusLabels are the publication states, in completion order.
var StatusLabels = []string{"published", "changed", "draft", "archived"}

// StatusField selects entries by publication state.
func StatusField() Field {
	return Field{
		Key:       "status",
		Operators: schema.MatchOperators,
		Complete:  StaticValues(StatusLabels),
		Convert: MapRule{
			"published": LiteralRule{Fragment: Fragment{
				"sys.publishedAt[exists]": "true",
			}},
			"changed": LiteralRule{Fragment: Fragment{
				ArchivedAttr: "false",
				"changed":    "true",
			}},
			"draft": LiteralRule{Fragment: Fragment{
				ArchivedAttr:                   "false",
				"sys.publishedVersion[exists]": "false",
				"changed":                      "true",
			}},
			"archived": LiteralRule{Fragment: Fragment{
				ArchivedAttr: "true",
			}},
		},
	}
}
