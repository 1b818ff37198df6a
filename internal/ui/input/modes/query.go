package modes

import (
	"github.com/charmbracelet/bubbles/textinput"

	"websearch/internal/ui/input/types"
)

// QueryMode edits the search term
type QueryMode struct {
	TextInputMode
}

func NewQueryMode(ti *textinput.Model) *QueryMode {
	return &QueryMode{
		TextInputMode: NewTextInputMode(types.ModeQuery, "query", ti),
	}
}
