package strategy

// Form types mirror the flat field layout the console collects from the user.
// Builders in this package turn them into the nested backend payloads; they
// never validate; run the validators in pkg/validation first.

// DCAForm is the flat DCA form state. Boolean toggles gate whether the
// matching sub-config block is attached to the payload at all.
type DCAForm struct {
	Name         string
	AssetSymbol  string
	BaseAmount   float64
	Interval     string // candlestick interval, drives the execution frequency
	StrategyType DCAStrategyType

	MaxPositionSize float64 // emitted only when positive

	// Sentiment toggle + fields
	SentimentMultiplier   bool
	FearMultiplier        float64
	ExtremeFearMultiplier float64
	GreedMultiplier       float64

	// Volatility toggle + fields
	VolatilityAdjustment     bool
	VolatilityPeriod         int
	LowVolatilityThreshold   float64
	HighVolatilityThreshold  float64
	LowVolatilityMultiplier  float64
	HighVolatilityMultiplier float64

	// RSI toggle + fields
	EnableRSI            bool
	RSIPeriod            int
	RSIOversold          float64
	RSIOverbought        float64
	OversoldMultiplier   float64
	OverboughtMultiplier float64

	// DipBuying fields: a single threshold/multiplier pair the builder
	// expands into a three-level ladder
	DipThresholdPercentage float64
	DipMultiplier          float64
	MaxDipPurchases        int

	// Execution filters
	MinPrice     float64
	MaxPrice     float64
	FearGreedMin int
	FearGreedMax int
}

// GridForm is the flat grid trading form state.
type GridForm struct {
	Name             string
	AssetSymbol      string
	InvestmentAmount float64
	GridCount        int
	RangePercentage  float64

	EnableStopLoss       bool
	StopLossPercentage   float64
	EnableTakeProfit     bool
	TakeProfitPercentage float64
}

// RSIForm is the flat RSI strategy form state.
type RSIForm struct {
	Name             string
	AssetSymbol      string
	InvestmentAmount float64

	Period     int
	Oversold   float64
	Overbought float64

	StopLossPercentage   float64
	EnableTakeProfit     bool
	TakeProfitPercentage float64
}

// SMAForm is the flat SMA crossover form state.
type SMAForm struct {
	Name             string
	AssetSymbol      string
	InvestmentAmount float64

	FastPeriod int
	SlowPeriod int

	StopLossPercentage   float64
	EnableTakeProfit     bool
	TakeProfitPercentage float64
}

// MACDForm is the flat MACD form state.
type MACDForm struct {
	Name             string
	AssetSymbol      string
	InvestmentAmount float64

	FastPeriod   int
	SlowPeriod   int
	SignalPeriod int

	StopLossPercentage   float64
	EnableTakeProfit     bool
	TakeProfitPercentage float64
}
