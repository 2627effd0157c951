package std

import "github.com/zmolnar/go-atlink/wire"

// CmeCode is a 3GPP TS 27.007 mobile-equipment error code.
type CmeCode int32

const (
	CmePhoneFailure                                CmeCode = 0
	CmeNoConnection                                CmeCode = 1
	CmeLinkReserved                                CmeCode = 2
	CmeNotAllowed                                  CmeCode = 3
	CmeNotSupported                                CmeCode = 4
	CmePhSimPin                                    CmeCode = 5
	CmePhFsimPin                                   CmeCode = 6
	CmePhFsimPuk                                   CmeCode = 7
	CmeSimNotInserted                              CmeCode = 10
	CmeSimPin                                      CmeCode = 11
	CmeSimPuk                                      CmeCode = 12
	CmeSimFailure                                  CmeCode = 13
	CmeSimBusy                                     CmeCode = 14
	CmeSimWrong                                    CmeCode = 15
	CmeIncorrectPassword                           CmeCode = 16
	CmeSimPin2                                     CmeCode = 17
	CmeSimPuk2                                     CmeCode = 18
	CmeMemoryFull                                  CmeCode = 20
	CmeInvalidIndex                                CmeCode = 21
	CmeNotFound                                    CmeCode = 22
	CmeMemoryFailure                               CmeCode = 23
	CmeTextTooLong                                 CmeCode = 24
	CmeInvalidChars                                CmeCode = 25
	CmeDialStringTooLong                           CmeCode = 26
	CmeDialStringInvalid                           CmeCode = 27
	CmeNoNetwork                                   CmeCode = 30
	CmeNetworkTimeout                              CmeCode = 31
	CmeNetworkNotAllowed                           CmeCode = 32
	CmeNetworkPin                                  CmeCode = 40
	CmeNetworkPuk                                  CmeCode = 41
	CmeNetworkSubsetPin                            CmeCode = 42
	CmeNetworkSubsetPuk                            CmeCode = 43
	CmeServicePin                                  CmeCode = 44
	CmeServicePuk                                  CmeCode = 45
	CmeCorpPin                                     CmeCode = 46
	CmeCorpPuk                                     CmeCode = 47
	CmeHiddenKeyRequired                           CmeCode = 48
	CmeEapMethodNotSupported                       CmeCode = 49
	CmeIncorrectParameters                         CmeCode = 50
	CmeCommandDisabled                             CmeCode = 51
	CmeCommandAborted                              CmeCode = 52
	CmeNotAttachedRestricted                       CmeCode = 53
	CmeNotAllowedEmergencyOnly                     CmeCode = 54
	CmeNotAllowedRestricted                        CmeCode = 55
	CmeFixedDialNumberOnly                         CmeCode = 56
	CmeTemporarilyOutOfService                     CmeCode = 57
	CmeLanguageOrAlphabetNotSupported              CmeCode = 58
	CmeUnexpectedDataValue                         CmeCode = 59
	CmeSystemFailure                               CmeCode = 60
	CmeDataMissing                                 CmeCode = 61
	CmeCallBarred                                  CmeCode = 62
	CmeMessageWaitingIndicationSubscriptionFailure CmeCode = 63
	CmeUnknown                                     CmeCode = 100
	CmeImsiUnknownInHss                            CmeCode = 102
	CmeIllegalUe                                   CmeCode = 103
	CmeImsiUnknownInVlr                            CmeCode = 104
	CmeImeiNotAccepted                             CmeCode = 105
	CmeIllegalMe                                   CmeCode = 106
	CmePsServicesNotAllowed                        CmeCode = 107
	CmePsAndNonPsServicesNotAllowed                CmeCode = 108
	CmeUeIdentityNotDerivedFromNetwork             CmeCode = 109
	CmeImplicitlyDetached                          CmeCode = 110
	CmePlmnNotAllowed                              CmeCode = 111
	CmeAreaNotAllowed                              CmeCode = 112
	CmeRoamingNotAllowedInArea                     CmeCode = 113
	CmePsServicesNotAllowedInPlmn                  CmeCode = 114
	CmeNoCellsInArea                               CmeCode = 115
	CmeMscTemporarilyNotReachable                  CmeCode = 116
	CmeNetworkFailureAttach                        CmeCode = 117
	CmeCsDomainUnavailable                         CmeCode = 118
	CmeEsmFailure                                  CmeCode = 119
	CmeCongestion                                  CmeCode = 122
	CmeMbmsBearerCapabilitiesInsufficient          CmeCode = 124
	CmeNotAuthorizedForCsg                         CmeCode = 125
	CmeInsufficientResources                       CmeCode = 126
	CmeMissingOrUnknownApn                         CmeCode = 127
	CmeUnknownPdpAddressOrType                     CmeCode = 128
	CmeUserAuthenticationFailed                    CmeCode = 129
	CmeActivationRejectedByGgsnOrGw                CmeCode = 130
	CmeActivationRejectedUnspecified               CmeCode = 131
	CmeServiceOptionNotSupported                   CmeCode = 132
	CmeServiceOptionNotSubscribed                  CmeCode = 133
	CmeServiceOptionOutOfOrder                     CmeCode = 134
	CmeNsapiOrPtiAlreadyInUse                      CmeCode = 135
	CmeRegularDeactivation                         CmeCode = 136
	CmeQosNotAccepted                              CmeCode = 137
	CmeCallCannotBeIdentified                      CmeCode = 138
	CmeCsServiceTemporarilyUnavailable             CmeCode = 139
	CmeFeatureNotSupported                         CmeCode = 140
	CmeSemanticErrorInTftOperation                 CmeCode = 141
	CmeSyntacticalErrorInTftOperation              CmeCode = 142
	CmeUnknownPdpContext                           CmeCode = 143
	CmeSemanticErrorsInPacketFilter                CmeCode = 144
	CmeSyntacticalErrorInPacketFilter              CmeCode = 145
	CmePdpContextWithoutTftAlreadyActivated        CmeCode = 146
	CmeMulticastGroupMembershipTimeout             CmeCode = 147
	CmeGprsUnknown                                 CmeCode = 148
	CmePdpAuthFailure                              CmeCode = 149
	CmeInvalidMobileClass                          CmeCode = 150
	CmeLastPdnDisconnectionNotAllowedLegacy        CmeCode = 151
	CmeLastPdnDisconnectionNotAllowed              CmeCode = 171
	CmeSemanticallyIncorrectMessage                CmeCode = 172
	CmeInvalidMandatoryInformation                 CmeCode = 173
	CmeMessageTypeNotImplemented                   CmeCode = 174
	CmeConditionalIeError                          CmeCode = 175
	CmeUnspecifiedProtocolError                    CmeCode = 176
	CmeOperatorDeterminedBarring                   CmeCode = 177
	CmeMaximumNumberOfBearersReached               CmeCode = 178
	CmeRequestedApnNotSupported                    CmeCode = 179
	CmeRequestRejectedBcmViolation                 CmeCode = 180
	CmeUnsupportedQciOr5QiValue                    CmeCode = 181
	CmeUserDataViaControlPlaneCongested            CmeCode = 182
	CmeSmsProvidedViaGprsInRoutingArea             CmeCode = 183
	CmeInvalidPtiValue                             CmeCode = 184
	CmeNoBearerActivated                           CmeCode = 185
	CmeMessageNotCompatibleWithProtocolState       CmeCode = 186
	CmeRecoveryOnTimerExpiry                       CmeCode = 187
	CmeInvalidTransactionIdValue                   CmeCode = 188
	CmeServiceOptionNotAuthorizedInPlmn            CmeCode = 189
	CmeNetworkFailureActivation                    CmeCode = 190
	CmeReactivationRequested                       CmeCode = 191
	CmeIpv4OnlyAllowed                             CmeCode = 192
	CmeIpv6OnlyAllowed                             CmeCode = 193
	CmeSingleAddressBearersOnlyAllowed             CmeCode = 194
	CmeCollisionWithNetworkInitiatedRequest        CmeCode = 195
	CmeIpv4V6OnlyAllowed                           CmeCode = 196
	CmeNonIpOnlyAllowed                            CmeCode = 197
	CmeBearerHandlingUnsupported                   CmeCode = 198
	CmeApnRestrictionIncompatible                  CmeCode = 199
	CmeMultipleAccessToPdnConnectionNotAllowed     CmeCode = 200
	CmeEsmInformationNotReceived                   CmeCode = 201
	CmePdnConnectionNonexistent                    CmeCode = 202
	CmeMultiplePdnConnectionSameApnNotAllowed      CmeCode = 203
	CmeSevereNetworkFailure                        CmeCode = 204
	CmeInsufficientResourcesForSliceAndDnn         CmeCode = 205
	CmeUnsupportedSscMode                          CmeCode = 206
	CmeInsufficientResourcesForSlice               CmeCode = 207
	CmeMessageTypeNotCompatibleWithProtocolState   CmeCode = 208
	CmeIeNotImplemented                            CmeCode = 209
	CmeN1ModeNotAllowed                            CmeCode = 210
	CmeRestrictedServiceArea                       CmeCode = 211
	CmeLadnUnavailable                             CmeCode = 212
	CmeMissingOrUnknownDnnInSlice                  CmeCode = 213
	CmeNgksiAlreadyInUse                           CmeCode = 214
	CmePayloadNotForwarded                         CmeCode = 215
	CmeNon3GppAccessTo5GcnNotAllowed               CmeCode = 216
	CmeServingNetworkNotAuthorized                 CmeCode = 217
	CmeDnnNotSupportedInSlice                      CmeCode = 218
	CmeInsufficientUserPlaneResourcesForPduSession CmeCode = 219
	CmeOutOfLadnServiceArea                        CmeCode = 220
	CmePtiMismatch                                 CmeCode = 221
	CmeMaxDataRateForUserPlaneIntegrityTooLow      CmeCode = 222
	CmeSemanticErrorInQosOperation                 CmeCode = 223
	CmeSyntacticalErrorInQosOperation              CmeCode = 224
	CmeInvalidMappedEpsBearerIdentity              CmeCode = 225
	CmeRedirectionTo5GcnRequired                   CmeCode = 226
	CmeRedirectionToEpcRequired                    CmeCode = 227
	CmeTemporarilyUnauthorizedForSnpn              CmeCode = 228
	CmePermanentlyUnauthorizedForSnpn              CmeCode = 229
	CmeEthernetOnlyAllowed                         CmeCode = 230
	CmeUnauthorizedForCag                          CmeCode = 231
	CmeNoNetworkSlicesAvailable                    CmeCode = 232
	CmeWirelineAccessAreaNotAllowed                CmeCode = 233
)

var cmeCodes = []CmeCode{
	CmePhoneFailure, CmeNoConnection, CmeLinkReserved, CmeNotAllowed,
	CmeNotSupported, CmePhSimPin, CmePhFsimPin, CmePhFsimPuk,
	CmeSimNotInserted, CmeSimPin, CmeSimPuk, CmeSimFailure, CmeSimBusy,
	CmeSimWrong, CmeIncorrectPassword, CmeSimPin2, CmeSimPuk2,
	CmeMemoryFull, CmeInvalidIndex, CmeNotFound, CmeMemoryFailure,
	CmeTextTooLong, CmeInvalidChars, CmeDialStringTooLong,
	CmeDialStringInvalid, CmeNoNetwork, CmeNetworkTimeout,
	CmeNetworkNotAllowed, CmeNetworkPin, CmeNetworkPuk,
	CmeNetworkSubsetPin, CmeNetworkSubsetPuk, CmeServicePin,
	CmeServicePuk, CmeCorpPin, CmeCorpPuk, CmeHiddenKeyRequired,
	CmeEapMethodNotSupported, CmeIncorrectParameters, CmeCommandDisabled,
	CmeCommandAborted, CmeNotAttachedRestricted,
	CmeNotAllowedEmergencyOnly, CmeNotAllowedRestricted,
	CmeFixedDialNumberOnly, CmeTemporarilyOutOfService,
	CmeLanguageOrAlphabetNotSupported, CmeUnexpectedDataValue,
	CmeSystemFailure, CmeDataMissing, CmeCallBarred,
	CmeMessageWaitingIndicationSubscriptionFailure, CmeUnknown,
	CmeImsiUnknownInHss, CmeIllegalUe, CmeImsiUnknownInVlr,
	CmeImeiNotAccepted, CmeIllegalMe, CmePsServicesNotAllowed,
	CmePsAndNonPsServicesNotAllowed, CmeUeIdentityNotDerivedFromNetwork,
	CmeImplicitlyDetached, CmePlmnNotAllowed, CmeAreaNotAllowed,
	CmeRoamingNotAllowedInArea, CmePsServicesNotAllowedInPlmn,
	CmeNoCellsInArea, CmeMscTemporarilyNotReachable,
	CmeNetworkFailureAttach, CmeCsDomainUnavailable, CmeEsmFailure,
	CmeCongestion, CmeMbmsBearerCapabilitiesInsufficient,
	CmeNotAuthorizedForCsg, CmeInsufficientResources,
	CmeMissingOrUnknownApn, CmeUnknownPdpAddressOrType,
	CmeUserAuthenticationFailed, CmeActivationRejectedByGgsnOrGw,
	CmeActivationRejectedUnspecified, CmeServiceOptionNotSupported,
	CmeServiceOptionNotSubscribed, CmeServiceOptionOutOfOrder,
	CmeNsapiOrPtiAlreadyInUse, CmeRegularDeactivation, CmeQosNotAccepted,
	CmeCallCannotBeIdentified, CmeCsServiceTemporarilyUnavailable,
	CmeFeatureNotSupported, CmeSemanticErrorInTftOperation,
	CmeSyntacticalErrorInTftOperation, CmeUnknownPdpContext,
	CmeSemanticErrorsInPacketFilter, CmeSyntacticalErrorInPacketFilter,
	CmePdpContextWithoutTftAlreadyActivated,
	CmeMulticastGroupMembershipTimeout, CmeGprsUnknown,
	CmePdpAuthFailure, CmeInvalidMobileClass,
	CmeLastPdnDisconnectionNotAllowedLegacy,
	CmeLastPdnDisconnectionNotAllowed, CmeSemanticallyIncorrectMessage,
	CmeInvalidMandatoryInformation, CmeMessageTypeNotImplemented,
	CmeConditionalIeError, CmeUnspecifiedProtocolError,
	CmeOperatorDeterminedBarring, CmeMaximumNumberOfBearersReached,
	CmeRequestedApnNotSupported, CmeRequestRejectedBcmViolation,
	CmeUnsupportedQciOr5QiValue, CmeUserDataViaControlPlaneCongested,
	CmeSmsProvidedViaGprsInRoutingArea, CmeInvalidPtiValue,
	CmeNoBearerActivated, CmeMessageNotCompatibleWithProtocolState,
	CmeRecoveryOnTimerExpiry, CmeInvalidTransactionIdValue,
	CmeServiceOptionNotAuthorizedInPlmn, CmeNetworkFailureActivation,
	CmeReactivationRequested, CmeIpv4OnlyAllowed, CmeIpv6OnlyAllowed,
	CmeSingleAddressBearersOnlyAllowed,
	CmeCollisionWithNetworkInitiatedRequest, CmeIpv4V6OnlyAllowed,
	CmeNonIpOnlyAllowed, CmeBearerHandlingUnsupported,
	CmeApnRestrictionIncompatible,
	CmeMultipleAccessToPdnConnectionNotAllowed,
	CmeEsmInformationNotReceived, CmePdnConnectionNonexistent,
	CmeMultiplePdnConnectionSameApnNotAllowed, CmeSevereNetworkFailure,
	CmeInsufficientResourcesForSliceAndDnn, CmeUnsupportedSscMode,
	CmeInsufficientResourcesForSlice,
	CmeMessageTypeNotCompatibleWithProtocolState, CmeIeNotImplemented,
	CmeN1ModeNotAllowed, CmeRestrictedServiceArea, CmeLadnUnavailable,
	CmeMissingOrUnknownDnnInSlice, CmeNgksiAlreadyInUse,
	CmePayloadNotForwarded, CmeNon3GppAccessTo5GcnNotAllowed,
	CmeServingNetworkNotAuthorized, CmeDnnNotSupportedInSlice,
	CmeInsufficientUserPlaneResourcesForPduSession,
	CmeOutOfLadnServiceArea, CmePtiMismatch,
	CmeMaxDataRateForUserPlaneIntegrityTooLow,
	CmeSemanticErrorInQosOperation, CmeSyntacticalErrorInQosOperation,
	CmeInvalidMappedEpsBearerIdentity, CmeRedirectionTo5GcnRequired,
	CmeRedirectionToEpcRequired, CmeTemporarilyUnauthorizedForSnpn,
	CmePermanentlyUnauthorizedForSnpn, CmeEthernetOnlyAllowed,
	CmeUnauthorizedForCag, CmeNoNetworkSlicesAvailable,
	CmeWirelineAccessAreaNotAllowed,
}

// CmeError is the mobile-equipment error final result,
// `+CME ERROR: <n>`, with the code validated against the declared set.
type CmeError struct {
	Code wire.Numeric[CmeCode]
}

func NewCmeError() *CmeError {
	return &CmeError{Code: wire.NewNumeric(cmeCodes...)}
}

func (e *CmeError) Accept(v wire.InputVisitor) bool {
	return wire.ParseResponse(v, "+CME ERROR:", &e.Code)
}
