package strategy

// DCAStrategyType identifies the DCA sub-strategy the backend should run.
type DCAStrategyType string

const (
	DCASimple          DCAStrategyType = "Simple"
	DCARSIBased        DCAStrategyType = "RSIBased"
	DCAVolatilityBased DCAStrategyType = "VolatilityBased"
	DCADynamic         DCAStrategyType = "Dynamic"
	DCADipBuying       DCAStrategyType = "DipBuying"
	DCASentimentBased  DCAStrategyType = "SentimentBased"
)

// DCAStrategyTypes lists every sub-strategy the backend accepts.
var DCAStrategyTypes = []DCAStrategyType{
	DCASimple,
	DCARSIBased,
	DCAVolatilityBased,
	DCADynamic,
	DCADipBuying,
	DCASentimentBased,
}

// Valid reports whether t is a known DCA sub-strategy.
func (t DCAStrategyType) Valid() bool {
	for _, known := range DCAStrategyTypes {
		if t == known {
			return true
		}
	}
	return false
}

// Frequency is the backend's single-variant execution cadence. Exactly one
// field is ever set; the backend dispatches on which key is present in the
// serialized object, so unset variants must be absent rather than zero.
type Frequency struct {
	Hourly  *int `json:"Hourly,omitempty"`
	Daily   *int `json:"Daily,omitempty"`
	Weekly  *int `json:"Weekly,omitempty"`
	Monthly *int `json:"Monthly,omitempty"`
	Custom  *int `json:"Custom,omitempty"` // interval in minutes
}

// Hourly returns a frequency of every n hours.
func Hourly(n int) Frequency { return Frequency{Hourly: &n} }

// Daily returns a frequency of every n days.
func Daily(n int) Frequency { return Frequency{Daily: &n} }

// Weekly returns a frequency of every n weeks.
func Weekly(n int) Frequency { return Frequency{Weekly: &n} }

// Monthly returns a frequency of every n months.
func Monthly(n int) Frequency { return Frequency{Monthly: &n} }

// DCAConfig is the full DCA payload the backend expects. Optional sub-configs
// are pointers with omitempty: the backend decides which indicators to compute
// by key presence, so a disabled block must not serialize at all.
type DCAConfig struct {
	BaseAmount   float64         `json:"base_amount"`
	Frequency    Frequency       `json:"frequency"`
	StrategyType DCAStrategyType `json:"strategy_type"`
	Filters      DCAFilters      `json:"filters"`

	SentimentConfig  *SentimentConfig  `json:"sentiment_config,omitempty"`
	VolatilityConfig *VolatilityConfig `json:"volatility_config,omitempty"`
	RSIConfig        *RSIThresholds    `json:"rsi_config,omitempty"`

	// DipBuying only
	DipLevels           []DipLevel `json:"dip_levels,omitempty"`
	ReferencePeriodDays *int       `json:"reference_period_days,omitempty"`

	// Dynamic only
	DynamicFactors *DynamicFactors `json:"dynamic_factors,omitempty"`

	MaxPositionSize *float64 `json:"max_position_size,omitempty"`
}

// DCAFilters bounds strategy execution. The block is always present in the
// payload even when every field is unset.
type DCAFilters struct {
	MinPrice     *float64 `json:"min_price,omitempty"`
	MaxPrice     *float64 `json:"max_price,omitempty"`
	FearGreedMin *int     `json:"fear_greed_min,omitempty"`
	FearGreedMax *int     `json:"fear_greed_max,omitempty"`
}

// SentimentConfig scales the base amount by the Fear & Greed index.
type SentimentConfig struct {
	NormalMultiplier      float64 `json:"normal_multiplier"`
	FearMultiplier        float64 `json:"fear_multiplier"`
	ExtremeFearMultiplier float64 `json:"extreme_fear_multiplier"`
	GreedMultiplier       float64 `json:"greed_multiplier"`
}

// VolatilityConfig scales the base amount by realized volatility.
type VolatilityConfig struct {
	Period                   int     `json:"period"`
	LowThreshold             float64 `json:"low_threshold"`
	HighThreshold            float64 `json:"high_threshold"`
	NormalMultiplier         float64 `json:"normal_multiplier"`
	LowVolatilityMultiplier  float64 `json:"low_volatility_multiplier"`
	HighVolatilityMultiplier float64 `json:"high_volatility_multiplier"`
}

// RSIThresholds scales the base amount by the RSI reading.
type RSIThresholds struct {
	Period               int     `json:"period"`
	OversoldThreshold    float64 `json:"oversold_threshold"`
	OverboughtThreshold  float64 `json:"overbought_threshold"`
	NormalMultiplier     float64 `json:"normal_multiplier"`
	OversoldMultiplier   float64 `json:"oversold_multiplier"`
	OverboughtMultiplier float64 `json:"overbought_multiplier"`
}

// DipLevel is one rung of the DipBuying ladder.
type DipLevel struct {
	PriceDropPercentage float64 `json:"price_drop_percentage"`
	AmountMultiplier    float64 `json:"amount_multiplier"`
	MaxTriggers         int     `json:"max_triggers"`
}

// DynamicFactors weights the signals the Dynamic strategy blends.
type DynamicFactors struct {
	RSIWeight        float64 `json:"rsi_weight"`
	VolatilityWeight float64 `json:"volatility_weight"`
	SentimentWeight  float64 `json:"sentiment_weight"`
	TrendWeight      float64 `json:"trend_weight"`
	MaxMultiplier    float64 `json:"max_multiplier"`
	MinMultiplier    float64 `json:"min_multiplier"`
}

// GridConfig is the grid trading payload.
type GridConfig struct {
	InvestmentAmount float64          `json:"investment_amount"`
	GridCount        int              `json:"grid_count"`
	RangePercentage  float64          `json:"range_percentage"`
	Spacing          GridSpacing      `json:"spacing"`
	RiskSettings     GridRiskSettings `json:"risk_settings"`
	MarketMaking     MarketMaking     `json:"market_making"`
}

// GridSpacing describes the distance between adjacent grid levels.
type GridSpacing struct {
	Mode         string  `json:"mode"`
	FixedSpacing float64 `json:"fixed_spacing"`
}

// GridRiskSettings bounds grid inventory and losses.
type GridRiskSettings struct {
	MaxInventory         float64  `json:"max_inventory"`
	StopLossPercentage   *float64 `json:"stop_loss_percentage,omitempty"`
	TakeProfitPercentage *float64 `json:"take_profit_percentage,omitempty"`
}

// MarketMaking tunes the passive-quoting side of the grid.
type MarketMaking struct {
	Enabled               bool    `json:"enabled"`
	MaxInventoryDeviation float64 `json:"max_inventory_deviation"`
	OrderRefreshSeconds   int     `json:"order_refresh_seconds"`
}

// RSIConfig is the RSI indicator-strategy payload.
type RSIConfig struct {
	Period              int     `json:"period"`
	OversoldThreshold   float64 `json:"oversold_threshold"`
	OverboughtThreshold float64 `json:"overbought_threshold"`
	InvestmentAmount    float64 `json:"investment_amount"`

	PositionSizing    PositionSizing    `json:"position_sizing"`
	RiskManagement    RiskManagement    `json:"risk_management"`
	SignalFilters     SignalFilters     `json:"signal_filters"`
	ExitStrategy      ExitStrategy      `json:"exit_strategy"`
	PerformanceConfig PerformanceConfig `json:"performance_config"`
}

// SMAConfig is the SMA crossover payload.
type SMAConfig struct {
	FastPeriod       int     `json:"fast_period"`
	SlowPeriod       int     `json:"slow_period"`
	InvestmentAmount float64 `json:"investment_amount"`

	PositionSizing    PositionSizing    `json:"position_sizing"`
	RiskManagement    RiskManagement    `json:"risk_management"`
	SignalFilters     SignalFilters     `json:"signal_filters"`
	ExitStrategy      ExitStrategy      `json:"exit_strategy"`
	PerformanceConfig PerformanceConfig `json:"performance_config"`
}

// MACDConfig is the MACD payload.
type MACDConfig struct {
	FastPeriod       int     `json:"fast_period"`
	SlowPeriod       int     `json:"slow_period"`
	SignalPeriod     int     `json:"signal_period"`
	InvestmentAmount float64 `json:"investment_amount"`

	PositionSizing    PositionSizing    `json:"position_sizing"`
	RiskManagement    RiskManagement    `json:"risk_management"`
	SignalFilters     SignalFilters     `json:"signal_filters"`
	ExitStrategy      ExitStrategy      `json:"exit_strategy"`
	PerformanceConfig PerformanceConfig `json:"performance_config"`
}

// PositionSizing is shared by the indicator strategies.
type PositionSizing struct {
	Mode                  string  `json:"mode"`
	BaseAmount            float64 `json:"base_amount"`
	MaxPositionPercentage float64 `json:"max_position_percentage"`
	ScaleInEnabled        bool    `json:"scale_in_enabled"`
}

// RiskManagement is shared by the indicator strategies.
type RiskManagement struct {
	StopLossPercentage     float64  `json:"stop_loss_percentage"`
	TakeProfitPercentage   *float64 `json:"take_profit_percentage,omitempty"`
	MaxDailyLossPercentage float64  `json:"max_daily_loss_percentage"`
	MaxOpenPositions       int      `json:"max_open_positions"`
	TrailingStopEnabled    bool     `json:"trailing_stop_enabled"`
}

// SignalFilters is shared by the indicator strategies.
type SignalFilters struct {
	MinVolumeUSD        float64 `json:"min_volume_usd"`
	ConfirmationCandles int     `json:"confirmation_candles"`
	CooldownMinutes     int     `json:"cooldown_minutes"`
	TrendFilterEnabled  bool    `json:"trend_filter_enabled"`
}

// ExitStrategy is shared by the indicator strategies.
type ExitStrategy struct {
	Mode          string `json:"mode"`
	TimeStopHours int    `json:"time_stop_hours"`
	MaxHoldDays   int    `json:"max_hold_days"`
}

// PerformanceConfig is shared by the indicator strategies.
type PerformanceConfig struct {
	EvaluationWindowDays int     `json:"evaluation_window_days"`
	MinWinRate           float64 `json:"min_win_rate"`
	AutoPauseEnabled     bool    `json:"auto_pause_enabled"`
}
