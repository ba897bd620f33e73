package handlers

// HandlerBundle groups all endpoint handlers into one struct for route
// registration.
type HandlerBundle struct {
	Requests      *RequestHandler
	Proposals     *ProposalHandler
	Feed          *FeedHandler
	Notifications *NotificationHandler
	Conversations *ConversationHandler
	Categories    *CategoryHandler
}
