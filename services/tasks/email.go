package tasks

import (
	"encoding/json"
	"superlife/models"

	"github.com/hibiken/asynq"
)

const TypeEmailSend = "email:send"

func NewEmailTask(payload models.EmailPayload) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeEmailSend, b)
	opts := []asynq.Option{asynq.MaxRetry(5)}

	return task, opts, nil
}
