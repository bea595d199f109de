package catalog

// Content groups: each group is the set of test items that describe the same
// underlying video (human, Qwen and GPT versions). The shuffle generator
// randomizes group order and within-group order but keeps members adjacent.
var contentGroups = map[string][]string{
	"starwars":        {"test1", "test2", "test3"},
	"janegoodall":     {"test4", "test5", "test6"},
	"elf":             {"test7", "test8", "test9"},
	"crashcoursekids": {"test10", "test11", "test12"},
	"ladybird":        {"test13", "test14", "test15"},
	"makeup":          {"test16", "test17", "test18"},
	"origami":         {"test19", "test20", "test21"},
	"baldeagles":      {"test22", "test23", "test24"},
	"pickles":         {"test25", "test26", "test27"},
	"frozen":          {"test28", "test29", "test30"},
}

// GroupNames returns the declared group names. Order is fixed so callers that
// shuffle get a stable starting point.
func GroupNames() []string {
	return []string{
		"starwars", "janegoodall", "elf", "crashcoursekids", "ladybird",
		"makeup", "origami", "baldeagles", "pickles", "frozen",
	}
}

// GroupMembers returns the test item ids declared for a group.
func GroupMembers(name string) []string {
	m := contentGroups[name]
	out := make([]string, len(m))
	copy(out, m)
	return out
}

// GroupOf returns the group a test item id belongs to.
func GroupOf(itemID string) (string, bool) {
	for name, ids := range contentGroups {
		for _, id := range ids {
			if id == itemID {
				return name, true
			}
		}
	}
	return "", false
}
