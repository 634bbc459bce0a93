package apischema

import "context"

// runChain threads value through stages in order, feeding each stage the
// previous result. The first error stops the chain.
func runChain(ctx context.Context, value any, params Params, stages []SanitizerFunc) (any, error) {
	result := value
	for _, stage := range stages {
		var err error
		if result, err = stage(ctx, result, params); err != nil {
			return nil, err
		}
	}
	return result, nil
}
