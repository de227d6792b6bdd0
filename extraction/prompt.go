package extraction

// systemPrompt is the fixed extraction instruction, constant across all
// requests. The JSON-only contract here is reinforced by the providers'
// json_object response format.
const systemPrompt = `You extract action items from meeting notes and produce structured JSON.

Respond with valid JSON only. No markdown, no explanation. Schema:
{
  "actionItems": [
    {
      "task": "What needs to be done",
      "assignee": "Person responsible, or null if not stated",
      "priority": "high, medium, or low",
      "deadline": "Deadline as stated in the notes, or null if not stated",
      "context": "One sentence of surrounding context from the notes"
    }
  ],
  "summary": "One sentence summarizing the meeting"
}

Rules:
- Extract every action item, commitment, and follow-up in the notes.
- assignee: null unless a specific person is responsible.
- priority: exactly one of "high", "medium", "low", inferred from urgency language.
- deadline: null unless a date or timeframe is stated.
- actionItems: empty array if the notes contain no action items.`

// userLeadIn prefixes the verbatim notes in the user message.
const userLeadIn = "Extract the action items from the following meeting notes:\n\n"

// BuildPrompt renders the fixed instruction plus the notes into a
// completion request. Deterministic: the same notes always produce the
// same request. No truncation happens here; the validator's length cap is
// the only size control.
func BuildPrompt(notes string) CompletionRequest {
	return CompletionRequest{
		System:  systemPrompt,
		Message: userLeadIn + notes,
	}
}
