package tasks

import (
	"encoding/json"
	"time"

	"voyago/models"

	"github.com/hibiken/asynq"
)

const TypeDepartureReminder = "reminder:departure"

// NewDepartureReminderTask builds the asynq task that fires ahead of the
// booked outbound departure.
func NewDepartureReminderTask(payload models.ReminderPayload, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeDepartureReminder, b)
	opts := []asynq.Option{asynq.ProcessAt(fireAt)}

	return task, opts, nil
}
