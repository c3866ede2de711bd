package mongo

import (
	"errors"

	mongodrv "go.mongodb.org/mongo-driver/mongo"
)

func isDuplicateKey(err error) bool {
	var we mongodrv.WriteException
	if errors.As(err, &we) {
		for _, e := range we.WriteErrors {
			if e.Code == 11000 {
				return true
			}
		}
	}
	return false
}
