package ledger

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

func TestSummaryEncodesAmountsAsNumbers(t *testing.T) {
	txs := []Transaction{
		{ID: "t1", Email: "a@x.com", Amount: decimal.NewFromInt(50), Description: "coffee"},
		{ID: "t2", Email: "a@x.com", Amount: decimal.RequireFromString("2.5"), Description: "tea"},
	}
	out, err := json.Marshal(Summary{Transactions: txs, Total: Sum(txs)})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	body := string(out)
	for _, want := range []string{`"amount":50`, `"amount":2.5`, `"totalAmount":52.5`} {
		if !strings.Contains(body, want) {
			t.Fatalf("expected %s in %s", want, body)
		}
	}
}

func TestSumEmpty(t *testing.T) {
	if got := Sum(nil); !got.IsZero() {
		t.Fatalf("expected zero, got %s", got)
	}
}
