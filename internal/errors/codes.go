package errors

// Error code constants, format CATEGORY_SPECIFIC_DETAIL.
// The storefront frontend maps these codes to display messages.

const (
	// ==================== Auth (AUTH_) ====================
	AuthUnauthorized       = "AUTH_UNAUTHORIZED"
	AuthInvalidCredentials = "AUTH_INVALID_CREDENTIALS"
	AuthTokenExpired       = "AUTH_TOKEN_EXPIRED"
	AuthTokenInvalid       = "AUTH_TOKEN_INVALID"
	AuthAdminNotFound      = "AUTH_ADMIN_NOT_FOUND"

	// ==================== Validation (VALIDATION_) ====================
	ValidationInvalidInput  = "VALIDATION_INVALID_INPUT"
	ValidationInvalidID     = "VALIDATION_INVALID_ID"
	ValidationInvalidFormat = "VALIDATION_INVALID_FORMAT"
	ValidationInvalidRange  = "VALIDATION_INVALID_RANGE"
	ValidationRequired      = "VALIDATION_REQUIRED"

	// ==================== Resources (RESOURCE_) ====================
	ResourceNotFound      = "RESOURCE_NOT_FOUND"
	ResourceAlreadyExists = "RESOURCE_ALREADY_EXISTS"
	ResourceConflict      = "RESOURCE_CONFLICT"

	// ==================== Catalog (CATALOG_) ====================
	CategoryNotFound     = "CATALOG_CATEGORY_NOT_FOUND"
	CategoryNameExists   = "CATALOG_CATEGORY_NAME_EXISTS"
	ProductNotFound      = "CATALOG_PRODUCT_NOT_FOUND"
	ProductSlugExists    = "CATALOG_PRODUCT_SLUG_EXISTS"
	ProductImageNotFound = "CATALOG_PRODUCT_IMAGE_NOT_FOUND"
	ComboNotFound        = "CATALOG_COMBO_NOT_FOUND"
	ComboTooFewProducts  = "CATALOG_COMBO_TOO_FEW_PRODUCTS"

	// ==================== Orders (ORDER_) ====================
	OrderNotFound      = "ORDER_NOT_FOUND"
	OrderInvalidType   = "ORDER_INVALID_TYPE"
	OrderInvalidStatus = "ORDER_INVALID_STATUS"

	// ==================== Contact inbox (CONTACT_) ====================
	ContactNotFound      = "CONTACT_NOT_FOUND"
	ContactInvalidStatus = "CONTACT_INVALID_STATUS"

	// ==================== Banners (BANNER_) ====================
	BannerNotFound = "BANNER_NOT_FOUND"

	// ==================== Uploads (UPLOAD_) ====================
	UploadInvalidFileType = "UPLOAD_INVALID_FILE_TYPE"
	UploadFileTooLarge    = "UPLOAD_FILE_TOO_LARGE"
	UploadFailed          = "UPLOAD_FAILED"

	// ==================== Rate limiting (RATE_) ====================
	RateLimitExceeded = "RATE_LIMIT_EXCEEDED"

	// ==================== Internal (INTERNAL_) ====================
	InternalServerError   = "INTERNAL_SERVER_ERROR"
	InternalDatabaseError = "INTERNAL_DATABASE_ERROR"
	InternalStorageError  = "INTERNAL_STORAGE_ERROR"
)
