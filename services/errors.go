package services

import "errors"

// Общие ошибки, используемые в разных сервисах и маппинге HTTP.
var (
	// Ресурс не найден (универсальная)
	ErrNotFound = errors.New("requested resource not found")

	// Ошибки валидации и бизнес-правил
	ErrValidationFailed   = errors.New("validation failed")
	ErrInvalidRole        = errors.New("invalid role")
	ErrLeagueNameRequired = errors.New("league name is required")
	ErrTeamNameRequired   = errors.New("team name is required")
	ErrPlayerNameRequired = errors.New("player name is required")
	ErrStatisticNegative  = errors.New("statistic value must not be negative")
	ErrScoreNegative      = errors.New("match score must not be negative")
	ErrMatchTeamInvalid   = errors.New("match references an unknown team")
	ErrMatchLeagueInvalid = errors.New("match references an unknown league")
	ErrStatisticRefInvalid = errors.New("statistic references an unknown match or player")
	ErrPlayerTeamInvalid  = errors.New("player references an unknown team")
	ErrLogoStorageDisabled = errors.New("logo storage is not configured")

	// Ошибки конфликтов
	ErrUserUsernameConflict = errors.New("username is already in use")
	ErrUserEmailConflict    = errors.New("email address is already in use")
	ErrLeagueNameConflict   = errors.New("league name is already in use")
	ErrTeamNameConflict     = errors.New("team name is already in use")
	ErrPlayerNumberConflict = errors.New("jersey number is already taken in this team")

	// Ошибки аутентификации и авторизации
	ErrAuthInvalidCredentials = errors.New("invalid username or password")
	ErrForbiddenOperation     = errors.New("operation not allowed for the current user")

	// Ошибки, специфичные для сущностей (дублируют ErrNotFound, но дают больше контекста)
	ErrUserNotFound      = errors.New("user not found")
	ErrLeagueNotFound    = errors.New("league not found")
	ErrTeamNotFound      = errors.New("team not found")
	ErrPlayerNotFound    = errors.New("player not found")
	ErrMatchNotFound     = errors.New("match not found")
	ErrStatisticNotFound = errors.New("match statistic not found")
)
