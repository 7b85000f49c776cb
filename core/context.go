package core

import (
	"context"
	"io"
)

type ServiceContext struct {
	Context context.Context
	Out     io.Writer
}
