package render

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/creation-code/internal/domain"
	"github.com/trebuchet-org/creation-code/internal/usecase"
)

type stubDisassembler struct {
	listing string
	got     []byte
}

func (s *stubDisassembler) Disassemble(code []byte) string {
	s.got = code
	return s.listing
}

func testResult() *usecase.CreationCodeResult {
	return &usecase.CreationCodeResult{
		Address:  common.HexToAddress("0x00000000000000000000000000000000000000aa"),
		Mode:     domain.WithoutArgs,
		Source:   domain.SourceTrace,
		TxHash:   common.HexToHash("0x01"),
		Bytecode: []byte{0x60, 0x80, 0x60, 0x40},
	}
}

func TestCreationCodeRenderer_Hex(t *testing.T) {
	var out bytes.Buffer
	r := NewCreationCodeRenderer(&out, &stubDisassembler{}, false, false)

	require.NoError(t, r.Render(testResult()))
	assert.Equal(t, "0x60806040", out.String())
}

func TestCreationCodeRenderer_EmptyBytecode(t *testing.T) {
	var out bytes.Buffer
	r := NewCreationCodeRenderer(&out, &stubDisassembler{}, false, false)

	result := testResult()
	result.Bytecode = []byte{}
	require.NoError(t, r.Render(result))
	assert.Equal(t, "0x", out.String())
}

func TestCreationCodeRenderer_Disassemble(t *testing.T) {
	var out bytes.Buffer
	disasm := &stubDisassembler{listing: "00000000: PUSH1 0x80\n"}
	r := NewCreationCodeRenderer(&out, disasm, false, true)

	require.NoError(t, r.Render(testResult()))
	assert.Equal(t, "00000000: PUSH1 0x80\n", out.String())
	assert.Equal(t, []byte{0x60, 0x80, 0x60, 0x40}, disasm.got)
}

func TestCreationCodeRenderer_JSON(t *testing.T) {
	var out bytes.Buffer
	r := NewCreationCodeRenderer(&out, &stubDisassembler{listing: "unused"}, true, false)

	require.NoError(t, r.Render(testResult()))

	var got map[string]string
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	assert.Equal(t, testResult().Address.Hex(), got["address"])
	assert.Equal(t, "without-args", got["mode"])
	assert.Equal(t, "trace", got["source"])
	assert.Equal(t, "0x60806040", got["bytecode"])
	assert.Equal(t, common.HexToHash("0x01").Hex(), got["txHash"])
	assert.NotContains(t, got, "disassembly")
}

func TestCreationCodeRenderer_JSONWithDisassembly(t *testing.T) {
	var out bytes.Buffer
	disasm := &stubDisassembler{listing: "00000000: PUSH1 0x80\n00000002: PUSH1 0x40\n"}
	r := NewCreationCodeRenderer(&out, disasm, true, true)

	require.NoError(t, r.Render(testResult()))

	var got map[string]string
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	assert.Equal(t, "0x60806040", got["bytecode"])
	assert.Equal(t, "00000000: PUSH1 0x80\n00000002: PUSH1 0x40\n", got["disassembly"])
	assert.Equal(t, []byte{0x60, 0x80, 0x60, 0x40}, disasm.got)
}

func TestFormatError(t *testing.T) {
	color.NoColor = true
	defer func() { color.NoColor = false }()

	assert.Equal(t, "Error: could not find creation tx data", FormatError(errors.New("could not find creation tx data")))
}
