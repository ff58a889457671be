package modelgraph

// Collect returns a duplicate free list of all models reachable from supplied values,
// in breadth first discovery order.
func Collect(values ...interface{}) []Model {
	return CollectFiltered(nil, values...)
}

// CollectFiltered returns a duplicate free list of all models reachable from supplied values,
// unless discarded. A discarded model is neither collected nor are its references explored;
// models reachable only through it are not collected either.
func CollectFiltered(discard func(Model) bool, values ...interface{}) []Model {
	ids := map[ID]bool{}
	var collected []Model
	var queued []Model

	queueOne := func(obj Model) {
		if ids[obj.ID()] {
			return
		}
		if discard != nil && discard(obj) {
			return
		}
		queued = append(queued, obj)
	}

	for _, value := range values {
		Visit(value, queueOne)
	}

	//the same model can be queued more than once, dedup happens once it is dequeued
	for head := 0; head < len(queued); head++ {
		obj := queued[head]
		queued[head] = nil
		id := obj.ID()
		if ids[id] {
			continue
		}
		ids[id] = true
		collected = append(collected, obj)
		VisitImmediate(obj, queueOne)
	}
	return collected
}
