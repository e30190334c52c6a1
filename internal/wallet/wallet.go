// Package wallet parses and normalises the wallet identifiers accepted by the API.
package wallet

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ethereum/go-ethereum/common"

	"github.com/osse101/QuestGate_Go/internal/domain"
)

// Kind identifies the format of a wallet address
type Kind int

const (
	KindEVM Kind = iota + 1
	KindAccountID
)

func (k Kind) String() string {
	switch k {
	case KindEVM:
		return "evm"
	case KindAccountID:
		return "account_id"
	default:
		return "unknown"
	}
}

// Address is a validated wallet identifier in canonical form
type Address struct {
	value string
	kind  Kind
}

// Parse validates s and returns it in canonical form. EVM addresses must carry
// the 0x prefix and are returned in EIP-55 checksum case. Native account ids
// are shard.realm.num with leading zeros removed.
func Parse(s string) (Address, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Address{}, fmt.Errorf("%w: empty address", domain.ErrInvalidAddress)
	}

	if has0xPrefix(s) {
		if !common.IsHexAddress(s) {
			return Address{}, fmt.Errorf("%w: %q is not a 20-byte hex address", domain.ErrInvalidAddress, s)
		}
		return Address{value: common.HexToAddress(s).Hex(), kind: KindEVM}, nil
	}

	parts := strings.Split(s, ".")
	if len(parts) != 3 {
		return Address{}, fmt.Errorf("%w: %q", domain.ErrInvalidAddress, s)
	}
	nums := make([]string, len(parts))
	for i, p := range parts {
		n, err := strconv.ParseUint(p, 10, 64)
		if err != nil {
			return Address{}, fmt.Errorf("%w: %q", domain.ErrInvalidAddress, s)
		}
		nums[i] = strconv.FormatUint(n, 10)
	}
	return Address{value: strings.Join(nums, "."), kind: KindAccountID}, nil
}

// MustParse is like Parse but panics on error. Intended for tests and constants.
func MustParse(s string) Address {
	a, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return a
}

// String returns the canonical form
func (a Address) String() string { return a.value }

// Kind returns the address format
func (a Address) Kind() Kind { return a.kind }

// IsZero reports whether a is the zero Address
func (a Address) IsZero() bool { return a.value == "" }

// Equal compares canonical forms
func (a Address) Equal(b Address) bool { return a.value == b.value }

func has0xPrefix(s string) bool {
	return len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X')
}
