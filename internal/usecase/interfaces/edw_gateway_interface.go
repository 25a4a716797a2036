package interfaces

import "context"

// IEDWGateway abstracts the analytics warehouse (EDW) stored procedure API.
//
// Execute decodes the JSON result into out. found is false when the gateway
// answered with an empty body.
type IEDWGateway interface {
	Execute(ctx context.Context, procedureID int, params map[string]any, out any) (found bool, err error)
}
