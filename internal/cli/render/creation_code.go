package render

import (
	"encoding/json"
	"io"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/trebuchet-org/creation-code/internal/usecase"
)

// CreationCodeRenderer writes recovered bytecode to stdout
type CreationCodeRenderer struct {
	out          io.Writer
	disassembler usecase.Disassembler
	json         bool
	disassemble  bool
}

// NewCreationCodeRenderer creates a new creation code renderer
func NewCreationCodeRenderer(out io.Writer, disassembler usecase.Disassembler, asJSON, disassemble bool) *CreationCodeRenderer {
	return &CreationCodeRenderer{
		out:          out,
		disassembler: disassembler,
		json:         asJSON,
		disassemble:  disassemble,
	}
}

type creationCodeJSON struct {
	Address  string `json:"address"`
	Mode     string `json:"mode"`
	Source   string `json:"source"`
	TxHash   string `json:"txHash"`
	Bytecode string `json:"bytecode"`

	// Disassembly is set with --disassemble
	Disassembly string `json:"disassembly,omitempty"`
}

// Render writes the result as hex, an opcode listing or JSON
func (r *CreationCodeRenderer) Render(result *usecase.CreationCodeResult) error {
	if r.json {
		return r.renderJSON(result)
	}

	if r.disassemble {
		_, err := io.WriteString(r.out, r.disassembler.Disassemble(result.Bytecode))
		return err
	}

	// No trailing newline so the output can be piped as is
	_, err := io.WriteString(r.out, hexutil.Encode(result.Bytecode))
	return err
}

func (r *CreationCodeRenderer) renderJSON(result *usecase.CreationCodeResult) error {
	out := creationCodeJSON{
		Address:  result.Address.Hex(),
		Mode:     result.Mode.String(),
		Source:   string(result.Source),
		TxHash:   result.TxHash.Hex(),
		Bytecode: hexutil.Encode(result.Bytecode),
	}
	if r.disassemble {
		out.Disassembly = r.disassembler.Disassemble(result.Bytecode)
	}

	encoder := json.NewEncoder(r.out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(out)
}

var _ Renderer[*usecase.CreationCodeResult] = (*CreationCodeRenderer)(nil)
