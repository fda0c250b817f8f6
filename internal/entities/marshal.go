package entities

import (
	"bytes"
	"encoding/gob"
	"errors"
)

var ErrInvalidOrder = errors.New("invalid order data")

// Marshal/Unmarshal — бинарная сериализация для кеша трекинга.
func (o *Order) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(o); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (o *Order) Unmarshal(data []byte) error {
	if err := gob.NewDecoder(bytes.NewBuffer(data)).Decode(o); err != nil {
		return ErrInvalidOrder
	}
	return nil
}
