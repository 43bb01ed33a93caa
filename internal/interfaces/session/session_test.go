package session

import (
	"strings"
	"testing"
	"time"

	"marketledger/internal/application/service/market"
	domain "marketledger/internal/domain/entity/instruments"
	infrainstruments "marketledger/internal/infrastructure/instruments"
	inframarketdata "marketledger/internal/infrastructure/marketdata"
	"marketledger/internal/infrastructure/pricing"

	"github.com/shopspring/decimal"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRunner(t *testing.T) (*Runner, *market.Service, *pricing.Table) {
	t.Helper()
	logger, _ := logtest.NewNullLogger()
	table := pricing.NewTable(decimal.Zero)
	svc, err := market.NewService(infrainstruments.NewRepository(), inframarketdata.NewRepository(), table, logger)
	require.NoError(t, err)
	return NewRunner(svc, table, logger), svc, table
}

func TestParseFile(t *testing.T) {
	script, err := ParseFile("testdata/day.yaml")
	require.NoError(t, err)

	assert.Equal(t, "XMON", script.Market)
	require.Len(t, script.Instruments, 3)
	assert.Equal(t, InstrumentSpec{ID: "40", Type: "future", Symbol: "ES", Exchange: "CME", Month: 12, Year: 2026}, script.Instruments[2])
	require.Len(t, script.Steps, 8)
	assert.Equal(t, ActionQuote, script.Steps[5].Action)
	assert.Equal(t, "11", script.Steps[5].Price)
	assert.Equal(t, int64(4), script.Steps[3].Quantity)
}

func TestRunDaySession(t *testing.T) {
	script, err := ParseFile("testdata/day.yaml")
	require.NoError(t, err)
	runner, svc, _ := newRunner(t)

	report, err := runner.Run(script)
	require.NoError(t, err)

	assert.Equal(t, "XMON", report.Market)
	assert.Equal(t, 2, report.Registered)
	assert.Equal(t, 1, report.RejectedRegistration)
	assert.Equal(t, 3, report.AcceptedTrades)
	assert.Equal(t, 1, report.IgnoredTrades)

	// 4*10 + 1*11 + 3*20
	assert.True(t, decimal.NewFromInt(111).Equal(report.Summary.TotalValue), "got %s", report.Summary.TotalValue)
	assert.Equal(t, int64(8), report.Summary.TotalQuantity)
	assert.Equal(t, 2, svc.RegisteredProductCount())
	assert.False(t, svc.IsRegistered("13"))
}

func TestRunAppliesContractQuotes(t *testing.T) {
	runner, _, table := newRunner(t)

	_, err := runner.Run(&Script{Quotes: []Quote{{Symbol: "ES", Exchange: "CME", Month: 3, Year: 2027, Price: "4.5"}}})
	require.NoError(t, err)

	assert.True(t, decimal.RequireFromString("4.5").Equal(table.ContractPrice("ES", "CME", time.March, 2027)))
	assert.True(t, table.Price("ES", "CME").IsZero())
}

func TestRunFailures(t *testing.T) {
	cases := []struct {
		desc   string
		script string
		target error
	}{
		{
			"unknown product",
			"steps:\n  - {action: trade, product: \"99\", quantity: 1}\n",
			ErrUnknownProduct,
		},
		{
			"unknown action",
			"steps:\n  - {action: cancel, product: \"12\"}\n",
			ErrUnknownAction,
		},
		{
			"bad contract month",
			"instruments:\n  - {id: \"40\", type: future, symbol: ES, exchange: CME, month: 13, year: 2026}\n",
			ErrInvalidMonth,
		},
		{
			"negative quantity",
			"instruments:\n  - {id: \"12\", type: stock, symbol: AAPL, exchange: EXCH1}\nsteps:\n  - {action: register, product: \"12\"}\n  - {action: trade, product: \"12\", quantity: -3}\n",
			market.ErrNegativeQuantity,
		},
		{
			"duplicate instrument",
			"instruments:\n  - {id: \"12\", type: stock, symbol: AAPL, exchange: EXCH1}\n  - {id: \"12\", type: stock, symbol: MSFT, exchange: EXCH2}\n",
			ErrDuplicateInstrument,
		},
	}

	for _, tc := range cases {
		t.Run(tc.desc, func(t *testing.T) {
			script, err := Parse(strings.NewReader(tc.script))
			require.NoError(t, err)
			runner, _, _ := newRunner(t)

			_, err = runner.Run(script)
			assert.ErrorIs(t, err, tc.target)
		})
	}
}

func TestRunRejectsBadInput(t *testing.T) {
	runner, _, _ := newRunner(t)

	_, err := runner.Run(&Script{Quotes: []Quote{{Symbol: "AAPL", Exchange: "EXCH1", Price: "ten"}}})
	assert.ErrorContains(t, err, "parse price")

	_, err = runner.Run(&Script{Instruments: []InstrumentSpec{{ID: "1", Type: "bond"}}})
	assert.ErrorContains(t, err, "invalid instrument type")
}

func TestParseRejectsMalformedYAML(t *testing.T) {
	_, err := Parse(strings.NewReader("steps: [unclosed"))
	assert.ErrorContains(t, err, "decode session script")
}

func TestInstrumentSpecToDomain(t *testing.T) {
	product, err := InstrumentSpec{ID: "40", Type: "future", Symbol: "ES", Exchange: "CME", Month: 6, Year: 2027}.toDomain()
	require.NoError(t, err)
	assert.Equal(t, domain.NewFuture("40", "ES", "CME", time.June, 2027), product)
}
