package response

import "jobtrack/internal/domain"

type Resp struct {
	Code int         `json:"code"`
	Msg  string      `json:"msg"`
	Data interface{} `json:"data"`
}

// New keeps data non-null in the envelope.
func New(code int, msg string, data interface{}) Resp {
	if data == nil {
		data = struct{}{}
	}
	return Resp{Code: code, Msg: msg, Data: data}
}

func OK(data interface{}) Resp {
	return New(CodeOK, CodeMsgMap[CodeOK], data)
}

func Error(code int, customMsg string) Resp {
	msg := CodeMsgMap[code]
	if customMsg != "" {
		msg = customMsg
	}
	return New(code, msg, struct{}{})
}

// FromError renders a service failure. Internal details are not leaked to
// clients; everything else surfaces its message.
func FromError(err error) Resp {
	code := CodeFor(domain.KindOf(err))
	if code == CodeServerError {
		return Error(code, "")
	}
	return Error(code, err.Error())
}
