package panel

// Toast titles and messages shown by the panels.
const (
	TitleSuccess = "Éxito"
	TitleError   = "Error"

	MsgGenericError     = "Error al procesar la solicitud"
	MsgStockError       = "Error al actualizar el stock"
	MsgStockInvalid     = "El stock debe ser un número válido mayor o igual a 0"
	MsgLoadError        = "Error al cargar los pedidos"
	MsgInventoryError   = "Error al cargar el inventario"
	TitleActiveOrder    = "Ya tienes un pedido activo"
	MsgActiveOrder      = "Solo puedes tener un pedido activo a la vez"
	TitleAccepted       = "Pedido Aceptado"
	TitleRejected       = "Pedido Rechazado"
	TitleDelivered      = "Entrega Confirmada"
	msgAcceptedFormat   = "Pedido #%s aceptado exitosamente"
	msgRejectedFormat   = "Pedido #%s rechazado"
	msgDeliveredFormat  = "Pedido #%s entregado exitosamente"
	confirmDeliveryText = "¿Confirmas que has entregado exitosamente el pedido #%s?"
)

// Confirmation prompts of the pharmacy panel.
const (
	ConfirmRecipePrompt      = "¿Confirmar que la receta es válida y proceder con la preparación?"
	CancelRecipePrompt       = "¿Está seguro de que la receta es inválida? Esta acción cancelará el pedido."
	DispatchToCourierPrompt  = "¿Confirmar que el pedido fue entregado al repartidor?"
	MarkReadyForPickupPrompt = "¿Marcar el pedido como listo para retiro?"
)
