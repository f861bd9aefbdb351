package handler

import (
	jsoniter "github.com/json-iterator/go"
)

// json é o codec do pacote: as respostas da API são serializadas com
// jsoniter mantendo compatibilidade com a biblioteca padrão
var json = jsoniter.ConfigCompatibleWithStandardLibrary
