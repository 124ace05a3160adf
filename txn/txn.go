package txn

import (
	"strconv"

	"golang.org/x/text/unicode/norm"
)

const (
	// SignatureLength is the number of characters in a derived signature.
	SignatureLength = 36

	// SignatureSymbols is the alphabet signatures are drawn from: lowercase
	// letters and digits, 36 symbols. Must stay identical to
	// trie.DefaultSymbols so signatures route through the default index
	// alphabet.
	SignatureSymbols = "abcdefghijklmnopqrstuvwxyz0123456789"

	// hashPrime and hashMod parameterize the polynomial rolling hash.
	hashPrime = 31
	hashMod   = 1_000_000_007
)

// Transaction is one transfer between two parties. The value is comparable:
// two transactions with the same timestamp, parties, and signing state are
// the same transaction.
type Transaction struct {
	Timestamp int64
	From      string
	To        string

	sig string // empty until Signed
}

// New builds an unsigned transaction. Party names are normalized to NFC so
// that canonically equal Unicode spellings derive the same signature.
func New(timestamp int64, from, to string) Transaction {
	return Transaction{
		Timestamp: timestamp,
		From:      norm.NFC.String(from),
		To:        norm.NFC.String(to),
	}
}

// Signature returns the derived signature, or "" if the transaction has not
// been signed.
func (t Transaction) Signature() string {
	return t.sig
}

// Signed returns a copy of the transaction carrying its derived signature.
// Derivation is deterministic in the transaction fields.
func (t Transaction) Signed() Transaction {
	t.sig = deriveSignature(t.Timestamp, t.From, t.To)
	return t
}

// deriveSignature folds timestamp and party names into a rolling hash, then
// expands the hash state into SignatureLength symbols: residues below 10 map
// to digits, the rest to letters.
func deriveSignature(timestamp int64, from, to string) string {
	input := strconv.FormatInt(timestamp, 10) + from + to

	var value int64
	for _, r := range input {
		value = (value*hashPrime + int64(r)) % hashMod
	}

	var sig [SignatureLength]byte
	for i := 0; i < SignatureLength; i++ {
		value = (value*hashPrime + int64(i)) % hashMod
		c := value % 36
		if c < 10 {
			sig[i] = '0' + byte(c)
		} else {
			sig[i] = 'a' + byte(c-10)
		}
	}
	return string(sig[:])
}
