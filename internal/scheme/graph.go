package scheme

import (
	"fmt"

	"github.com/Lumos-Labs-HQ/airgen/internal/entity"
)

// Order sorts steps so that every step comes after the steps producing the
// kinds it requires. Steps keep their declared order where no dependency
// forces a move. A required kind that no step produces is left for the
// build to report as a missing reference.
func Order(steps []Step) ([]Step, error) {
	byKind := make(map[entity.Kind][]int, len(steps))
	for i, s := range steps {
		byKind[s.Kind] = append(byKind[s.Kind], i)
	}

	visited := make([]bool, len(steps))
	temp := make([]bool, len(steps))
	order := make([]Step, 0, len(steps))

	var visit func(i int) error
	visit = func(i int) error {
		if temp[i] {
			return fmt.Errorf("circular dependency detected involving %s", steps[i].Kind)
		}
		if visited[i] {
			return nil
		}

		temp[i] = true
		for _, dep := range steps[i].Requires {
			if dep == steps[i].Kind {
				continue
			}
			for _, j := range byKind[dep] {
				if err := visit(j); err != nil {
					return err
				}
			}
		}
		temp[i] = false
		visited[i] = true
		order = append(order, steps[i])
		return nil
	}

	for i := range steps {
		if err := visit(i); err != nil {
			return nil, err
		}
	}
	return order, nil
}
