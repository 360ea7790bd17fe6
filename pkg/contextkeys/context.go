package contextkeys

// Кастомный тип, чтобы избежать коллизий ключей в context
type contextKey string

// DBContextKey - ключ, по которому DBMiddleware кладет *gorm.DB в context
const DBContextKey = contextKey("db")
