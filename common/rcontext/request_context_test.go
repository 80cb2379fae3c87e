package rcontext

import (
	"testing"

	"github.com/littletreasures/hotel-media-repo/common"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestInitialCarriesLogger(t *testing.T) {
	ctx := Initial()
	assert.NotNil(t, ctx.Log)
	assert.Equal(t, true, ctx.Log.Data["nocontext"])
	assert.Same(t, ctx.Log, ctx.Value(common.ContextLogger))
}

func TestLogWithFields(t *testing.T) {
	ctx := Initial().LogWithFields(logrus.Fields{"image": "hotel1.jpg"})
	assert.Equal(t, "hotel1.jpg", ctx.Log.Data["image"])
	assert.Equal(t, true, ctx.Log.Data["nocontext"])
	assert.Same(t, ctx.Log, ctx.Value(common.ContextLogger))
}
