package web

import (
	"net/http"

	"portal/internal/adapters/http/middleware"
	"portal/internal/application/orchestrators"
)

// handleMessages handles GET (inbox) and POST (send) for /messages.
func handleMessages(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sess, ok := middleware.GetSessionFromContext(ctx)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	isHTML := isHTMLRequest(r)

	if r.Method == "GET" {
		messages, err := stores.MessageStore.ListByReceiverID(ctx, sess.AccountID)
		if err != nil {
			internalError(w, err)
			return
		}
		if isHTML {
			renderTemplate(w, r, "messages.html", map[string]any{
				"Messages": messages,
			})
			return
		}
		writeJSON(w, map[string]any{"Messages": messages})
		return
	}

	if r.Method == "POST" {
		input := orchestrators.SendMessageInput{
			SenderID: sess.AccountID,
			OrgID:    sess.CurrentOrgID,
		}
		if isFormRequest(r) {
			if err := r.ParseForm(); err != nil {
				http.Error(w, "Invalid form submission", http.StatusBadRequest)
				return
			}
			input.ReceiverID = r.FormValue("ReceiverID")
			input.Subject = r.FormValue("Subject")
			input.Content = r.FormValue("Content")
		} else {
			var body struct {
				ReceiverID, Subject, Content string
			}
			if err := strictDecode(r, &body); err != nil {
				http.Error(w, "Invalid request", http.StatusBadRequest)
				return
			}
			input.ReceiverID = body.ReceiverID
			input.Subject = body.Subject
			input.Content = body.Content
		}

		id, err := orchestrators.ExecuteSendMessage(ctx, input, orchestrators.SendMessageDeps{
			MessageStore: stores.MessageStore,
		})
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		if isHTML {
			http.Redirect(w, r, "/messages", http.StatusSeeOther)
		} else {
			w.WriteHeader(http.StatusCreated)
			writeJSON(w, map[string]string{"ID": id})
		}
		return
	}

	w.WriteHeader(http.StatusMethodNotAllowed)
}

// handleMessageRead handles POST /messages/{id}/read. Marking is idempotent.
func handleMessageRead(w http.ResponseWriter, r *http.Request) {
	sess, ok := middleware.GetSessionFromContext(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	msg, err := stores.MessageStore.GetByID(r.Context(), r.PathValue("id"))
	if err != nil {
		http.Error(w, "message not found", http.StatusNotFound)
		return
	}
	// Only the receiver marks a message read
	if msg.ReceiverID != sess.AccountID {
		http.Error(w, "Forbidden", http.StatusForbidden)
		return
	}

	err = orchestrators.ExecuteMarkMessageRead(r.Context(), msg.ID, orchestrators.SendMessageDeps{
		MessageStore: stores.MessageStore,
	})
	if err != nil {
		internalError(w, err)
		return
	}
	if isHTMLRequest(r) {
		http.Redirect(w, r, "/messages", http.StatusSeeOther)
	} else {
		w.WriteHeader(http.StatusNoContent)
	}
}
