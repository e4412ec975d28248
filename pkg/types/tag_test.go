package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTagChain(t *testing.T) {
	flat := Tag{Name: "Breakfast"}
	assert.Equal(t, []string{"Breakfast"}, flat.Chain())

	nested := Tag{Name: "Dinner", Child: &Tag{Name: "Italian", Child: &Tag{Name: "Pasta"}}}
	assert.Equal(t, []string{"Dinner", "Italian", "Pasta"}, nested.Chain())
}
