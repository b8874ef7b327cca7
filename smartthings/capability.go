package smartthings

// Capability is a named class of device functionality exposed by the
// SmartThings API, e.g. "battery" or "temperatureMeasurement".
type Capability string

const (
	CapabilityActivityLightingMode        Capability = "activityLightingMode"
	CapabilityAirConditionerFanMode       Capability = "airConditionerFanMode"
	CapabilityAirConditionerMode          Capability = "airConditionerMode"
	CapabilityAirQualitySensor            Capability = "airQualitySensor"
	CapabilityAlarm                       Capability = "alarm"
	CapabilityAudioMute                   Capability = "audioMute"
	CapabilityAudioVolume                 Capability = "audioVolume"
	CapabilityBattery                     Capability = "battery"
	CapabilityBodyMassIndexMeasurement    Capability = "bodyMassIndexMeasurement"
	CapabilityBodyWeightMeasurement       Capability = "bodyWeightMeasurement"
	CapabilityCarbonDioxideMeasurement    Capability = "carbonDioxideMeasurement"
	CapabilityCarbonMonoxideDetector      Capability = "carbonMonoxideDetector"
	CapabilityCarbonMonoxideMeasurement   Capability = "carbonMonoxideMeasurement"
	CapabilityDishwasherOperatingState    Capability = "dishwasherOperatingState"
	CapabilityDryerMode                   Capability = "dryerMode"
	CapabilityDryerOperatingState         Capability = "dryerOperatingState"
	CapabilityDustSensor                  Capability = "dustSensor"
	CapabilityEnergyMeter                 Capability = "energyMeter"
	CapabilityEquivalentCarbonDioxide     Capability = "equivalentCarbonDioxideMeasurement"
	CapabilityFormaldehydeMeasurement     Capability = "formaldehydeMeasurement"
	CapabilityGasMeter                    Capability = "gasMeter"
	CapabilityIlluminanceMeasurement      Capability = "illuminanceMeasurement"
	CapabilityInfraredLevel               Capability = "infraredLevel"
	CapabilityMediaInputSource            Capability = "mediaInputSource"
	CapabilityMediaPlayback               Capability = "mediaPlayback"
	CapabilityMediaPlaybackRepeat         Capability = "mediaPlaybackRepeat"
	CapabilityMediaPlaybackShuffle        Capability = "mediaPlaybackShuffle"
	CapabilityOdorSensor                  Capability = "odorSensor"
	CapabilityOvenMode                    Capability = "ovenMode"
	CapabilityOvenOperatingState          Capability = "ovenOperatingState"
	CapabilityOvenSetpoint                Capability = "ovenSetpoint"
	CapabilityPowerConsumptionReport      Capability = "powerConsumptionReport"
	CapabilityPowerMeter                  Capability = "powerMeter"
	CapabilityPowerSource                 Capability = "powerSource"
	CapabilityRefrigerationSetpoint       Capability = "refrigerationSetpoint"
	CapabilityRelativeBrightness          Capability = "relativeBrightness"
	CapabilityRelativeHumidityMeasurement Capability = "relativeHumidityMeasurement"
	CapabilityRobotCleanerCleaningMode    Capability = "robotCleanerCleaningMode"
	CapabilityRobotCleanerMovement        Capability = "robotCleanerMovement"
	CapabilityRobotCleanerTurboMode       Capability = "robotCleanerTurboMode"
	CapabilitySignalStrength              Capability = "signalStrength"
	CapabilitySmokeDetector               Capability = "smokeDetector"
	CapabilityTemperatureMeasurement      Capability = "temperatureMeasurement"
	CapabilityThermostatCoolingSetpoint   Capability = "thermostatCoolingSetpoint"
	CapabilityThermostatFanMode           Capability = "thermostatFanMode"
	CapabilityThermostatHeatingSetpoint   Capability = "thermostatHeatingSetpoint"
	CapabilityThermostatMode              Capability = "thermostatMode"
	CapabilityThermostatOperatingState    Capability = "thermostatOperatingState"
	CapabilityThermostatSetpoint          Capability = "thermostatSetpoint"
	CapabilityThreeAxis                   Capability = "threeAxis"
	CapabilityTvChannel                   Capability = "tvChannel"
	CapabilityTvocMeasurement             Capability = "tvocMeasurement"
	CapabilityUltravioletIndex            Capability = "ultravioletIndex"
	CapabilityVeryFineDustSensor          Capability = "veryFineDustSensor"
	CapabilityVoltageMeasurement          Capability = "voltageMeasurement"
	CapabilityWasherMode                  Capability = "washerMode"
	CapabilityWasherOperatingState        Capability = "washerOperatingState"
)

// Attribute is a specific telemetry field within a capability,
// e.g. "temperature" or "battery".
type Attribute string

const (
	AttributeAirConditionerMode       Attribute = "airConditionerMode"
	AttributeAirQuality               Attribute = "airQuality"
	AttributeAlarm                    Attribute = "alarm"
	AttributeBattery                  Attribute = "battery"
	AttributeBmiMeasurement           Attribute = "bmiMeasurement"
	AttributeBodyWeightMeasurement    Attribute = "bodyWeightMeasurement"
	AttributeBrightnessIntensity      Attribute = "brightnessIntensity"
	AttributeCarbonDioxide            Attribute = "carbonDioxide"
	AttributeCarbonMonoxide           Attribute = "carbonMonoxide"
	AttributeCarbonMonoxideLevel      Attribute = "carbonMonoxideLevel"
	AttributeCompletionTime           Attribute = "completionTime"
	AttributeCoolingSetpoint          Attribute = "coolingSetpoint"
	AttributeDishwasherJobState       Attribute = "dishwasherJobState"
	AttributeDryerJobState            Attribute = "dryerJobState"
	AttributeDryerMode                Attribute = "dryerMode"
	AttributeDustLevel                Attribute = "dustLevel"
	AttributeEnergy                   Attribute = "energy"
	AttributeEquivalentCarbonDioxide  Attribute = "equivalentCarbonDioxideMeasurement"
	AttributeFineDustLevel            Attribute = "fineDustLevel"
	AttributeFormaldehydeLevel        Attribute = "formaldehydeLevel"
	AttributeGasMeter                 Attribute = "gasMeter"
	AttributeGasMeterCalorific        Attribute = "gasMeterCalorific"
	AttributeGasMeterTime             Attribute = "gasMeterTime"
	AttributeGasMeterVolume           Attribute = "gasMeterVolume"
	AttributeHeatingSetpoint          Attribute = "heatingSetpoint"
	AttributeHumidity                 Attribute = "humidity"
	AttributeIlluminance              Attribute = "illuminance"
	AttributeInfraredLevel            Attribute = "infraredLevel"
	AttributeInputSource              Attribute = "inputSource"
	AttributeLightingMode             Attribute = "lightingMode"
	AttributeLqi                      Attribute = "lqi"
	AttributeMachineState             Attribute = "machineState"
	AttributeMute                     Attribute = "mute"
	AttributeOdorLevel                Attribute = "odorLevel"
	AttributeOvenJobState             Attribute = "ovenJobState"
	AttributeOvenMode                 Attribute = "ovenMode"
	AttributeOvenSetpoint             Attribute = "ovenSetpoint"
	AttributePlaybackRepeatMode       Attribute = "playbackRepeatMode"
	AttributePlaybackShuffle          Attribute = "playbackShuffle"
	AttributePlaybackStatus           Attribute = "playbackStatus"
	AttributePower                    Attribute = "power"
	AttributePowerConsumption         Attribute = "powerConsumption"
	AttributePowerSource              Attribute = "powerSource"
	AttributeRefrigerationSetpoint    Attribute = "refrigerationSetpoint"
	AttributeRobotCleanerCleaningMode Attribute = "robotCleanerCleaningMode"
	AttributeRobotCleanerMovement     Attribute = "robotCleanerMovement"
	AttributeRobotCleanerTurboMode    Attribute = "robotCleanerTurboMode"
	AttributeRssi                     Attribute = "rssi"
	AttributeSmoke                    Attribute = "smoke"
	AttributeSupportedInputSources    Attribute = "supportedInputSources"
	AttributeTemperature              Attribute = "temperature"
	AttributeThermostatFanMode        Attribute = "thermostatFanMode"
	AttributeThermostatMode           Attribute = "thermostatMode"
	AttributeThermostatOperatingState Attribute = "thermostatOperatingState"
	AttributeThermostatSetpoint       Attribute = "thermostatSetpoint"
	AttributeThreeAxis                Attribute = "threeAxis"
	AttributeTvChannel                Attribute = "tvChannel"
	AttributeTvChannelName            Attribute = "tvChannelName"
	AttributeTvocLevel                Attribute = "tvocLevel"
	AttributeUltravioletIndex         Attribute = "ultravioletIndex"
	AttributeVeryFineDustLevel        Attribute = "veryFineDustLevel"
	AttributeVoltage                  Attribute = "voltage"
	AttributeVolume                   Attribute = "volume"
	AttributeWasherJobState           Attribute = "washerJobState"
	AttributeWasherMode               Attribute = "washerMode"
)
