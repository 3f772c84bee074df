package ports

import "time"

type TokenService interface {
	Issue(userID int64, ttl time.Duration) (string, error)
	SubjectID(token string) (int64, error)
}
