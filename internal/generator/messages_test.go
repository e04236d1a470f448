package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Arma75/dtogen/internal/model"
)

func TestMessagesFor(t *testing.T) {
	t.Parallel()

	assert.Equal(t, " 시작일", MessagesFor(model.LocaleKorean).StartSuffix)
	assert.Equal(t, " start date", MessagesFor(model.LocaleEnglish).StartSuffix)
	assert.Equal(t, MessagesFor(model.LocaleKorean), MessagesFor(""))

	en := MessagesFor(model.LocaleEnglish)
	assert.Equal(t, "Returns the user name.", en.getterDoc("user name"))
	assert.Equal(t, "Sets the user name.", en.setterDoc("user name"))
	assert.Equal(t, "orders information", en.classSchema("orders"))
}
