package domain_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/staffdeck/payroll_hr_app/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseShiftTime(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int
		wantErr bool
	}{
		{name: "midnight", input: "00:00", want: 0},
		{name: "morning", input: "09:00", want: 540},
		{name: "last minute of day", input: "23:59", want: 1439},
		{name: "hour out of range", input: "24:00", wantErr: true},
		{name: "minute out of range", input: "12:60", wantErr: true},
		{name: "missing leading zero", input: "9:00", wantErr: true},
		{name: "not a time", input: "lunch", wantErr: true},
		{name: "empty", input: "", wantErr: true},
		{name: "trailing garbage", input: "09:00pm", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := domain.ParseShiftTime(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrInvalidTimeFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWorkedDuration(t *testing.T) {
	tests := []struct {
		name        string
		start, end  string
		wantHours   int
		wantMinutes int
	}{
		{name: "regular day shift", start: "09:00", end: "17:30", wantHours: 8, wantMinutes: 30},
		{name: "crosses midnight", start: "22:00", end: "02:00", wantHours: 4, wantMinutes: 0},
		{name: "zero-length shift", start: "08:00", end: "08:00", wantHours: 0, wantMinutes: 0},
		{name: "one minute before wrap", start: "00:01", end: "00:00", wantHours: 23, wantMinutes: 59},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hours, minutes, err := domain.WorkedDuration(tt.start, tt.end)
			require.NoError(t, err)
			assert.Equal(t, tt.wantHours, hours)
			assert.Equal(t, tt.wantMinutes, minutes)
		})
	}
}

func TestPayrollRecord_Recompute(t *testing.T) {
	wage := decimal.NewFromInt(6500)

	record := domain.PayrollRecord{
		StartTime: "09:00",
		EndTime:   "17:30",
		Consumptions: []domain.Consumption{
			{Amount: decimal.NewFromInt(600), Description: "lunch"},
			{Amount: decimal.NewFromInt(400), Description: "snacks"},
		},
		CashAdvance: decimal.NewFromInt(500),
		Imbalance:   decimal.Zero,
		DebtOwed:    decimal.Zero,
	}

	require.NoError(t, record.Recompute(wage))

	assert.Equal(t, 8, record.WorkedHours)
	assert.Equal(t, 30, record.WorkedMinutes)
	assert.True(t, record.GrossPay.Equal(decimal.NewFromInt(55250)), "gross = %s", record.GrossPay)
	assert.True(t, record.TotalDeduct.Equal(decimal.NewFromInt(1500)), "deductions = %s", record.TotalDeduct)
	assert.True(t, record.NetPay.Equal(decimal.NewFromInt(53750)), "net = %s", record.NetPay)
}

func TestPayrollRecord_Recompute_Idempotent(t *testing.T) {
	wage := decimal.NewFromFloat(123.45)

	record := domain.PayrollRecord{
		StartTime:    "07:15",
		EndTime:      "16:40",
		Consumptions: []domain.Consumption{{Amount: decimal.NewFromFloat(33.33)}},
		CashAdvance:  decimal.NewFromInt(10),
		Imbalance:    decimal.NewFromFloat(0.07),
		DebtOwed:     decimal.NewFromInt(5),
	}

	require.NoError(t, record.Recompute(wage))
	gross, deduct, net := record.GrossPay, record.TotalDeduct, record.NetPay

	require.NoError(t, record.Recompute(wage))
	assert.True(t, record.GrossPay.Equal(gross))
	assert.True(t, record.TotalDeduct.Equal(deduct))
	assert.True(t, record.NetPay.Equal(net))
}

func TestPayrollRecord_Recompute_NetMayBeNegative(t *testing.T) {
	record := domain.PayrollRecord{
		StartTime:   "09:00",
		EndTime:     "10:00",
		CashAdvance: decimal.NewFromInt(5000),
		Imbalance:   decimal.Zero,
		DebtOwed:    decimal.Zero,
	}

	require.NoError(t, record.Recompute(decimal.NewFromInt(1000)))
	assert.True(t, record.NetPay.Equal(decimal.NewFromInt(-4000)), "net must not be clamped, got %s", record.NetPay)
}

func TestPayrollRecord_Recompute_IncludesImbalance(t *testing.T) {
	record := domain.PayrollRecord{
		StartTime: "08:00",
		EndTime:   "16:00",
		Imbalance: decimal.NewFromInt(250),
	}

	require.NoError(t, record.Recompute(decimal.NewFromInt(1000)))
	assert.True(t, record.TotalDeduct.Equal(decimal.NewFromInt(250)))
	assert.True(t, record.NetPay.Equal(decimal.NewFromInt(7750)))
}

func TestPayrollRecord_Recompute_RejectsNegatives(t *testing.T) {
	base := domain.PayrollRecord{StartTime: "09:00", EndTime: "17:00"}

	t.Run("negative wage", func(t *testing.T) {
		record := base
		err := record.Recompute(decimal.NewFromInt(-1))
		assert.ErrorIs(t, err, domain.ErrNegativeAmount)
	})

	t.Run("negative consumption", func(t *testing.T) {
		record := base
		record.Consumptions = []domain.Consumption{{Amount: decimal.NewFromInt(-10)}}
		err := record.Recompute(decimal.NewFromInt(100))
		assert.ErrorIs(t, err, domain.ErrNegativeAmount)
	})

	t.Run("negative advance", func(t *testing.T) {
		record := base
		record.CashAdvance = decimal.NewFromInt(-5)
		err := record.Recompute(decimal.NewFromInt(100))
		assert.ErrorIs(t, err, domain.ErrNegativeAmount)
	})

	t.Run("invalid time reported before money", func(t *testing.T) {
		record := domain.PayrollRecord{StartTime: "25:00", EndTime: "17:00"}
		err := record.Recompute(decimal.NewFromInt(100))
		assert.ErrorIs(t, err, domain.ErrInvalidTimeFormat)
	})
}
