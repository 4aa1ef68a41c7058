package services

// User-facing overlay messages. Every failure path ends in one of these;
// nothing is retried and nothing propagates past the page.
const (
	MsgEditSuccess      = "Cliente alterado com sucesso!"
	MsgEditNoChanges    = "Não foram feitas alterações nos dados do cliente."
	MsgEditNoDetail     = "Erro ao editar cliente. Detalhes indisponíveis."
	MsgEditConnectivity = "Não foi possível conectar ao servidor. Verifique sua conexão e tente novamente."
	MsgEditUnexpected   = "Erro inesperado ao editar cliente."

	MsgDeleteSuccess = "Cliente excluído com sucesso!"
	MsgDeleteFailure = "Erro ao excluir cliente."

	MsgRegisterSuccess      = "Cliente cadastrado com sucesso!"
	MsgRegisterNoDetail     = "Erro ao cadastrar cliente. Detalhes indisponíveis."
	MsgRegisterConnectivity = "Não foi possível conectar ao servidor. Verifique sua conexão e tente novamente."
	MsgRegisterUnexpected   = "Erro inesperado ao cadastrar cliente."

	MsgReceiptSuccess = "Recibo cadastrado com sucesso!"
	MsgReceiptFailure = "Erro ao cadastrar recibo."

	MsgNoClientsFound  = "Nenhum cliente encontrado."
	MsgNoReceiptsFound = "Nenhum recibo encontrado."
)
