package plan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTopoSort_Order(t *testing.T) {
	order, err := topoSort(3, func(i int) []int {
		switch i {
		case 0:
			return []int{2}
		case 1:
			return nil
		default:
			return nil
		}
	})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 0}, order)
}

func TestTopoSort_Cycle(t *testing.T) {
	order, err := topoSort(3, func(i int) []int {
		switch i {
		case 0:
			return []int{1}
		case 1:
			return []int{0}
		default:
			return nil
		}
	})
	require.ErrorIs(t, err, errCycle)
	assert.Equal(t, []int{2}, order)
}

func TestTopoSort_OutOfRange(t *testing.T) {
	_, err := topoSort(1, func(int) []int { return []int{5} })
	assert.Error(t, err)
}

func TestQualName(t *testing.T) {
	q := QualName{"Expressions"}.Child("Preset")

	assert.Equal(t, "Expressions::Preset", q.String())
	assert.Equal(t, "Expressions_Preset", q.Join("_"))
	assert.Equal(t, "Preset", q.Local())
	assert.Equal(t, "Expressions", q.Root())
	assert.Empty(t, QualName{}.Local())
}
