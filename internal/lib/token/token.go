// Package token генерирует токены подтверждения подписки.
// Токен — непредсказуемая строка фиксированной длины из алфавитно-цифрового
// алфавита, полученная из криптографического источника случайности.
package token

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// Length — длина токена подтверждения. 25 символов алфавита из 62 знаков
// дают около 149 бит энтропии, перебор ссылок подтверждения нереалистичен.
const Length = 25

const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// Generator выдаёт токены подтверждения. Пустое значение готово к использованию.
type Generator struct{}

// Generate возвращает новый токен. Отказ источника случайности —
// фатальное состояние процесса, а не ошибка отдельного вызова.
func (Generator) Generate() string {
	buf := make([]byte, Length)
	alphabetLen := big.NewInt(int64(len(alphabet)))
	for i := range buf {
		n, err := rand.Int(rand.Reader, alphabetLen)
		if err != nil {
			panic(fmt.Sprintf("token: crypto/rand is unavailable: %v", err))
		}
		buf[i] = alphabet[n.Int64()]
	}
	return string(buf)
}
