package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/creation-code/internal/domain"
)

func TestParseArgsMode(t *testing.T) {
	tests := []struct {
		name        string
		withoutArgs bool
		onlyArgs    bool
		expected    domain.ArgsMode
		wantErr     bool
	}{
		{name: "no flags", expected: domain.Passthrough},
		{name: "without args", withoutArgs: true, expected: domain.WithoutArgs},
		{name: "only args", onlyArgs: true, expected: domain.OnlyArgs},
		{name: "both flags", withoutArgs: true, onlyArgs: true, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mode, err := ParseArgsMode(tt.withoutArgs, tt.onlyArgs)
			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrUsage)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, mode)
		})
	}
}

func TestSplitConstructorArgs_PassthroughSkipsABILookup(t *testing.T) {
	explorer := &mockExplorer{abiFunc: abis(domain.ABIRecord{Constructor: constructorWith(1)})}
	bytecode := patternBytes(64)

	out, err := NewSplitConstructorArgs(explorer, discardLogger()).
		Split(context.Background(), bytecode, contractAddr, domain.Passthrough)

	require.NoError(t, err)
	assert.Equal(t, bytecode, out)
	assert.Equal(t, 0, explorer.abiCalls)
}

func TestSplitConstructorArgs(t *testing.T) {
	bytecode := patternBytes(96)

	tests := []struct {
		name     string
		abis     []domain.ABIRecord
		mode     domain.ArgsMode
		expected []byte
		wantErr  error
	}{
		{
			name:     "without args strips two words",
			abis:     []domain.ABIRecord{{Constructor: constructorWith(2)}},
			mode:     domain.WithoutArgs,
			expected: bytecode[:32],
		},
		{
			name:     "only args keeps two words",
			abis:     []domain.ABIRecord{{Constructor: constructorWith(2)}},
			mode:     domain.OnlyArgs,
			expected: bytecode[32:],
		},
		{
			name:     "args window equal to the bytecode",
			abis:     []domain.ABIRecord{{Constructor: constructorWith(3)}},
			mode:     domain.OnlyArgs,
			expected: bytecode,
		},
		{
			name: "first ABI candidate is used",
			abis: []domain.ABIRecord{
				{ContractName: "Proxy", Constructor: constructorWith(1)},
				{ContractName: "Implementation", Constructor: constructorWith(2)},
			},
			mode:     domain.OnlyArgs,
			expected: bytecode[64:],
		},
		{
			name:    "empty ABI list",
			mode:    domain.WithoutArgs,
			wantErr: domain.ErrAbiNotFound,
		},
		{
			name:     "no constructor without args passes through",
			abis:     []domain.ABIRecord{{}},
			mode:     domain.WithoutArgs,
			expected: bytecode,
		},
		{
			name:    "no constructor only args fails",
			abis:    []domain.ABIRecord{{}},
			mode:    domain.OnlyArgs,
			wantErr: domain.ErrNoConstructor,
		},
		{
			name:     "constructor without parameters without args passes through",
			abis:     []domain.ABIRecord{{Constructor: constructorWith(0)}},
			mode:     domain.WithoutArgs,
			expected: bytecode,
		},
		{
			name:    "constructor without parameters only args fails",
			abis:    []domain.ABIRecord{{Constructor: constructorWith(0)}},
			mode:    domain.OnlyArgs,
			wantErr: domain.ErrNoConstructorArgs,
		},
		{
			name:    "args window larger than the bytecode",
			abis:    []domain.ABIRecord{{Constructor: constructorWith(4)}},
			mode:    domain.WithoutArgs,
			wantErr: domain.ErrMalformedBytecode,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			explorer := &mockExplorer{abiFunc: abis(tt.abis...)}

			out, err := NewSplitConstructorArgs(explorer, discardLogger()).
				Split(context.Background(), bytecode, contractAddr, tt.mode)

			assert.Equal(t, 1, explorer.abiCalls)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, out)
		})
	}
}

func TestSplitConstructorArgs_AbiErrorsShareKind(t *testing.T) {
	for _, kind := range []error{domain.ErrAbiNotFound, domain.ErrNoConstructor, domain.ErrNoConstructorArgs} {
		assert.ErrorIs(t, kind, domain.ErrAbi)
	}
}

func TestSplitConstructorArgs_LengthsSumToBytecode(t *testing.T) {
	explorer := &mockExplorer{abiFunc: abis(domain.ABIRecord{Constructor: constructorWith(3)})}
	splitter := NewSplitConstructorArgs(explorer, discardLogger())
	bytecode := patternBytes(250)

	without, err := splitter.Split(context.Background(), bytecode, contractAddr, domain.WithoutArgs)
	require.NoError(t, err)
	only, err := splitter.Split(context.Background(), bytecode, contractAddr, domain.OnlyArgs)
	require.NoError(t, err)

	assert.Len(t, only, 96)
	assert.Len(t, without, len(bytecode)-96)
	assert.Equal(t, bytecode, append(append([]byte{}, without...), only...))
}

func TestSplitConstructorArgs_DoesNotAliasInput(t *testing.T) {
	explorer := &mockExplorer{abiFunc: abis(domain.ABIRecord{Constructor: constructorWith(1)})}
	bytecode := patternBytes(64)

	only, err := NewSplitConstructorArgs(explorer, discardLogger()).
		Split(context.Background(), bytecode, contractAddr, domain.OnlyArgs)
	require.NoError(t, err)

	only[0] = 0xff
	assert.Equal(t, byte(32), bytecode[32])
}

func TestSplitConstructorArgs_ExplorerFailure(t *testing.T) {
	cause := errors.New("invalid API key")
	explorer := &mockExplorer{abiFunc: func(context.Context, common.Address) ([]domain.ABIRecord, error) {
		return nil, cause
	}}

	_, err := NewSplitConstructorArgs(explorer, discardLogger()).
		Split(context.Background(), patternBytes(32), contractAddr, domain.OnlyArgs)

	assert.ErrorIs(t, err, domain.ErrCollaborator)
	assert.ErrorIs(t, err, cause)
}
