package apperror

// messages maps error codes to human-readable messages
var messages = map[Code]string{
	// General validation
	CodeRequiredField:   "Required field is missing",
	CodeInvalidInput:    "Invalid input provided",
	CodeValidationError: "Validation error",
	CodeNotFound:        "Resource not found",

	// Configuration
	CodeConfigurationError: "Configuration error",

	// System errors
	CodeInternalError: "Internal error",
	CodeUnknownError:  "An unknown error occurred",

	// Value objects
	CodeInvalidAmount:         "Invalid amount value",
	CodeDecimalMismatch:       "Cannot operate on amounts with different decimals",
	CodeDivisionByZero:        "Division by zero",
	CodeInvalidSlippage:       "Slippage out of allowed range",
	CodeInvalidSlippageString: "Slippage value is not a valid number",
	CodeInvalidTokenAddress:   "Invalid token address",
	CodeInvalidTokenDecimals:  "Token decimals out of range",

	// Pool and pricing
	CodeInsufficientLiquidity: "Insufficient liquidity for trade size",
	CodeTokenOrderViolation:   "Pool tokens are not in canonical order",
	CodeTokenMismatch:         "Token does not belong to this pool",
	CodePoolNotFound:          "No eligible pool found",
	CodeNegativeReserve:       "Pool reserve cannot be negative",

	// Trading aggregates
	CodeBusinessRuleViolation:        "Business rule violation",
	CodeInvalidStateTransition:       "Illegal state transition",
	CodeExcessivePriceImpact:         "Price impact exceeds allowed threshold",
	CodeInsufficientInitialLiquidity: "Initial deposit below minimum liquidity",
	CodeLPTokensExceedSupply:         "LP tokens exceed total supply",
	CodeIdenticalTokens:              "Input and output tokens must differ",
	CodeNonPositiveAmount:            "Amount must be greater than zero",
	CodeTransactionSubmitFailed:      "Transaction submission failed",
}
