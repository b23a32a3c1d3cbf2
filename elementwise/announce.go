package elementwise

import (
	"sync"

	"github.com/expki/go-vectormath/logger"
)

var announced sync.Once

func announce() {
	announced.Do(func() {
		logger.Sugar().Debugf("elementwise backend: %s", backendName)
	})
}
