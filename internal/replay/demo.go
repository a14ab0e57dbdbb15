package replay

// Demo returns a scenario that exercises every operation, including
// promotion at each structural position, equal values in the sort
// order, and out of range failures.
func Demo() *Scenario {
	return &Scenario{
		Type:    TypeInt,
		Initial: []string{"5", "3", "5"},
		Steps: []Step{
			{Op: OpPushBack, Value: ref("8")},
			{Op: OpPushFront, Value: ref("1")},
			{Op: OpInsert, Pos: ref(2), Value: ref("7")},
			{Op: OpGet, Pos: ref(0)},
			{Op: OpGet, Pos: ref(1)},
			{Op: OpGet, Pos: ref(3)},
			{Op: OpGet, Pos: ref(5)},
			{Op: OpSearch, Value: ref("8")},
			{Op: OpSearch, Value: ref("42")},
			{Op: OpSet, Pos: ref(2), Value: ref("0")},
			{Op: OpContains, Value: ref("7")},
			{Op: OpRemove, Pos: ref(3)},
			{Op: OpRemove, Pos: ref(10)},
			{Op: OpInsert, Pos: ref(9), Value: ref("2")},
			{Op: OpPopBack},
			{Op: OpPopFront},
			{Op: OpGet, Pos: ref(1)},
		},
	}
}

func ref[T any](v T) *T { return &v }
