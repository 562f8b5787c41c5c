package usecases

import "context"

type SubmitLeadExecutor interface {
	Execute(ctx context.Context, cmd SubmitLeadCommand) (*SubmitLeadResult, error)
}
