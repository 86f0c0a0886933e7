package basket

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/CSroseX/Storefront-Fault-Injection-Harness/internal/faultinject"
)

// The whole demo hangs on the basket insert being the one command the
// injector recognizes. Pin the rendered command texts against the
// default target so a rename in either package fails loudly.
func TestCommandShapesAgainstInjectorTarget(t *testing.T) {
	tgt := faultinject.DefaultTarget

	assert.True(t, strings.Contains(insertItemCommand, tgt.Table), "insert must reference the target table")
	assert.True(t, strings.Contains(insertItemCommand, tgt.Insert), "insert must carry the insert keyword")

	for name, cmd := range map[string]string{
		"select": selectItemsCommand,
		"clear":  clearBasketCommand,
		"schema": createTableCommand,
	} {
		matched := strings.Contains(cmd, tgt.Table) && strings.Contains(cmd, tgt.Insert)
		assert.False(t, matched, "%s command must not match the target shape", name)
	}
}

func TestProductLookup(t *testing.T) {
	p, ok := product(1)
	assert.True(t, ok)
	assert.Equal(t, ".NET Bot Black Sweatshirt", p.Name)

	_, ok = product(999)
	assert.False(t, ok)
}
