package apperror

// Code represents a unique error code for the application
type Code string

// General error codes
const (
	CodeRequiredField   Code = "REQUIRED_FIELD"
	CodeInvalidInput    Code = "INVALID_INPUT"
	CodeValidationError Code = "VALIDATION_ERROR"
	CodeNotFound        Code = "NOT_FOUND"

	// Configuration
	CodeConfigurationError Code = "CONFIGURATION_ERROR"

	// System errors
	CodeInternalError Code = "INTERNAL_ERROR"
	CodeUnknownError  Code = "UNKNOWN_ERROR"
)

// Value object error codes
const (
	CodeInvalidAmount         Code = "INVALID_AMOUNT"
	CodeDecimalMismatch       Code = "DECIMAL_MISMATCH"
	CodeDivisionByZero        Code = "DIVISION_BY_ZERO"
	CodeInvalidSlippage       Code = "INVALID_SLIPPAGE"
	CodeInvalidSlippageString Code = "INVALID_SLIPPAGE_STRING"
	CodeInvalidTokenAddress   Code = "INVALID_TOKEN_ADDRESS"
	CodeInvalidTokenDecimals  Code = "INVALID_TOKEN_DECIMALS"
)

// Pool and pricing error codes
const (
	CodeInsufficientLiquidity Code = "INSUFFICIENT_LIQUIDITY"
	CodeTokenOrderViolation   Code = "TOKEN_ORDER_VIOLATION"
	CodeTokenMismatch         Code = "TOKEN_MISMATCH"
	CodePoolNotFound          Code = "POOL_NOT_FOUND"
	CodeNegativeReserve       Code = "NEGATIVE_RESERVE"
)

// Trading aggregate error codes
const (
	CodeBusinessRuleViolation        Code = "BUSINESS_RULE_VIOLATION"
	CodeInvalidStateTransition       Code = "INVALID_STATE_TRANSITION"
	CodeExcessivePriceImpact         Code = "EXCESSIVE_PRICE_IMPACT"
	CodeInsufficientInitialLiquidity Code = "INSUFFICIENT_INITIAL_LIQUIDITY"
	CodeLPTokensExceedSupply         Code = "LP_TOKENS_EXCEED_SUPPLY"
	CodeIdenticalTokens              Code = "IDENTICAL_TOKENS"
	CodeNonPositiveAmount            Code = "NON_POSITIVE_AMOUNT"
	CodeTransactionSubmitFailed      Code = "TRANSACTION_SUBMIT_FAILED"
)
