package indicator

// Names of the columns appended by the indicator library.
const (
	ColumnRSI = "RSI"

	ColumnMACD       = "MACD"
	ColumnSignalLine = "Signal_Line"

	ColumnBBMiddle = "BB_middle"
	ColumnBBUpper  = "BB_upper"
	ColumnBBLower  = "BB_lower"

	ColumnFib0   = "Fib_0"
	ColumnFib236 = "Fib_236"
	ColumnFib382 = "Fib_382"
	ColumnFib500 = "Fib_500"
	ColumnFib618 = "Fib_618"
	ColumnFib100 = "Fib_100"

	ColumnSupport    = "Support"
	ColumnResistance = "Resistance"

	ColumnMomentum = "Momentum"

	ColumnPP = "PP"
	ColumnR1 = "R1"
	ColumnS1 = "S1"
	ColumnR2 = "R2"
	ColumnS2 = "S2"
)
